package repokit

// Binder binds a domain repo to a specific Queryer, either the pool or a tx
type Binder[T any] interface {
	Bind(Queryer) T
}

// MustBind panics on a nil q, then binds
func MustBind[T any](b Binder[T], q Queryer) T {
	if q == nil {
		panic("repokit: nil Queryer")
	}
	return b.Bind(q)
}
