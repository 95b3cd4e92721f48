package ch

import "testing"

func TestBuildClientInfo(t *testing.T) {
	info := BuildClientInfo("", "discord")
	if len(info.Products) != 4 {
		t.Fatalf("products %+v", info.Products)
	}
	if p := info.Products[0]; p.Name != "utilbot" || p.Version != "dev" {
		t.Fatalf("default product %+v", p)
	}
	if p := info.Products[1]; p.Name != "role" || p.Version != "discord" {
		t.Fatalf("role %+v", p)
	}
	if got := BuildClientInfo("utilbot-cli", "cli").Products[0].Name; got != "utilbot-cli" {
		t.Fatalf("name %q", got)
	}
}
