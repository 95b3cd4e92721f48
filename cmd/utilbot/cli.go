package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/FFlyyy/bot/internal/core/version"
	perr "github.com/FFlyyy/bot/internal/platform/errors"
	auditdom "github.com/FFlyyy/bot/internal/services/api/audit/domain"
	chardom "github.com/FFlyyy/bot/internal/services/api/charinfo/domain"
	polldom "github.com/FFlyyy/bot/internal/services/api/poll/domain"
	snowdom "github.com/FFlyyy/bot/internal/services/api/snowflake/domain"
	unfurldom "github.com/FFlyyy/bot/internal/services/api/unfurl/domain"
	zendom "github.com/FFlyyy/bot/internal/services/api/zen/domain"
)

// app is what the commands run against
type app struct {
	zen       zendom.ServicePort
	charinfo  chardom.ServicePort
	snowflake snowdom.ServicePort
	poll      polldom.ServicePort
	unfurl    unfurldom.ServicePort

	// audit is nil when no ClickHouse is configured
	audit auditdom.ServicePort
	user  string
	now   func() time.Time
}

func newRootCmd(a *app) *cobra.Command {
	if a.now == nil {
		a.now = time.Now
	}

	root := &cobra.Command{
		Use:           "utilbot",
		Short:         "Run the utility commands from a terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	zenCmd := &cobra.Command{
		Use:   "zen [search...]",
		Short: "Show the Zen of Python, one line by index or the best match",
		RunE: a.run("zen", func(ctx context.Context, cmd *cobra.Command, args []string) error {
			r, err := a.zen.Select(ctx, zendom.SelectInput{Search: strings.Join(args, " ")})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), r.Title)
			fmt.Fprintln(cmd.OutOrStdout(), r.Text)
			return nil
		}),
	}

	charCmd := &cobra.Command{
		Use:   "charinfo <characters>",
		Short: "Describe up to 50 unicode characters",
		Args:  cobra.MinimumNArgs(1),
		RunE: a.run("charinfo", func(ctx context.Context, cmd *cobra.Command, args []string) error {
			r, err := a.charinfo.Describe(ctx, chardom.DescribeInput{Characters: strings.Join(args, " ")})
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, c := range r.Chars {
				fmt.Fprintf(out, "%s  %s  %s  %s\n", c.Codepoint, c.Escape, c.Char, c.Name)
			}
			if r.RawText != "" {
				fmt.Fprintln(out, "raw:", r.RawText)
			}
			return nil
		}),
	}

	snowCmd := &cobra.Command{
		Use:     "snowflake <id...>",
		Aliases: []string{"snf", "snfl", "sf"},
		Short:   "Decode Discord snowflakes into creation times",
		Args:    cobra.MinimumNArgs(1),
		RunE: a.run("snowflake", func(ctx context.Context, cmd *cobra.Command, args []string) error {
			r, err := a.snowflake.Decode(ctx, snowdom.DecodeInput{Snowflakes: args})
			if err != nil {
				return err
			}
			for _, e := range r.Entries {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  (%s)\n", e.ID, e.CreatedAt.UTC().Format(time.RFC3339), e.Since)
			}
			return nil
		}),
	}

	voteCmd := &cobra.Command{
		Use:     "vote <title> <option...>",
		Aliases: []string{"poll"},
		Short:   "Build a poll with lettered options",
		Args:    cobra.MinimumNArgs(1),
		RunE: a.run("vote", func(ctx context.Context, cmd *cobra.Command, args []string) error {
			p, err := a.poll.Create(ctx, polldom.CreateInput{Title: args[0], Options: args[1:]})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), p.Title)
			fmt.Fprintln(cmd.OutOrStdout(), p.Description)
			return nil
		}),
	}

	var (
		maxContinues int
		noCache      bool
	)
	unfurlCmd := &cobra.Command{
		Use:   "unfurl <url>",
		Short: "Follow a URL's redirects to its final destination",
		Args:  cobra.ExactArgs(1),
		RunE: a.run("unfurl", func(ctx context.Context, cmd *cobra.Command, args []string) error {
			useCache := !noCache
			r, err := a.unfurl.Unfurl(ctx, unfurldom.UnfurlInput{URL: args[0], MaxContinues: maxContinues, UseCache: &useCache})
			if err != nil {
				return err
			}
			return printUnfurl(cmd.OutOrStdout(), r, a.now())
		}),
	}
	unfurlCmd.Flags().IntVar(&maxContinues, "max-continues", 1, "resume a depth-limited chain this many times")
	unfurlCmd.Flags().BoolVar(&noCache, "no-cache", false, "skip cached results")

	var since time.Duration
	usageCmd := &cobra.Command{
		Use:   "usage",
		Short: "Summarise recorded command usage",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.audit == nil {
				return perr.New(perr.ErrorCodeUnavailable, "usage needs SERVICE_CLICKHOUSE_DBURL")
			}
			rows, err := a.audit.Usage(cmd.Context(), auditdom.UsageInput{Since: since})
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "COMMAND\tSURFACE\tCOUNT\tERRORS\tAVG MS")
			for _, u := range rows {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.1f\n", u.Command, u.Surface,
					humanize.Comma(int64(u.Count)), humanize.Comma(int64(u.Errors)), u.AvgLatencyMs)
			}
			return w.Flush()
		},
	}
	usageCmd.Flags().DurationVar(&since, "since", 24*time.Hour, "lookback window")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		Run: func(cmd *cobra.Command, _ []string) {
			v := version.Info()
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s)\n", v.Service, v.Version, v.Commit)
		},
	}

	root.AddCommand(zenCmd, charCmd, snowCmd, voteCmd, unfurlCmd, usageCmd, versionCmd)
	return root
}

// run wraps a command body with an audit record
func (a *app) run(name string, fn func(context.Context, *cobra.Command, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		start := a.now()
		err := fn(ctx, cmd, args)
		if a.audit != nil {
			inv := auditdom.Invocation{
				At:      start,
				Command: name,
				Surface: auditdom.SurfaceCLI,
				UserID:  a.user,
				OK:      err == nil,
				Latency: a.now().Sub(start),
			}
			if err != nil {
				inv.ErrorCode = strconv.Itoa(perr.HTTPStatus(err))
			}
			a.audit.Record(ctx, inv)
		}
		return err
	}
}

func printUnfurl(w io.Writer, r unfurldom.Result, now time.Time) error {
	if r.Depth != nil {
		fmt.Fprintf(w, "redirects:   %d\n", *r.Depth)
	}
	if r.Error != "" {
		fmt.Fprintf(w, "error:       %s\n", r.Error)
	} else if r.CreatedAt != nil {
		fmt.Fprintf(w, "fetched:     %s\n", humanize.RelTime(*r.CreatedAt, now, "ago", "from now"))
		if r.ExpiresAt != nil {
			fmt.Fprintf(w, "expires:     %s\n", humanize.RelTime(*r.ExpiresAt, now, "ago", "from now"))
		}
	}
	if r.Destination != "" {
		fmt.Fprintf(w, "destination: %s\n", r.Destination)
	}
	return nil
}
