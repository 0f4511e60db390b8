package commands

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/okian/cricanalytics/internal/adapters/export"
	"github.com/okian/cricanalytics/internal/config"
	"github.com/okian/cricanalytics/internal/domain/compare"
	"github.com/smartystreets/goconvey/convey"
)

const oneMatch = `meta:
  data_version: 0.9
innings:
  - 1st innings:
      team: Harbour City
      deliveries:
        - 0.1:
            batsman: A
            bowler: Z
            runs: {batsman: 4, extras: 0, total: 4}
        - 0.2:
            batsman: A
            bowler: Z
            runs: {batsman: 0, extras: 1, total: 1}
            wicket: {kind: bowled, player_out: A}
        - 0.3:
            batsman: B
            bowler: Z
            runs: {batsman: 5, extras: 0, total: 5}
`

const onePlayer = `innings:
  - 1st innings:
      deliveries:
        - 0.1:
            batsman: A
            runs: {batsman: 1, extras: 0, total: 1}
`

func writeMatch(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "m1.yaml"), []byte(content), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return dir
}

func run(ctx context.Context, args ...string) (string, string, error) {
	var out, errOut bytes.Buffer
	root := NewRootCommand(&out, &errOut)
	root.SetArgs(append([]string{"--no-color"}, args...))
	err := root.ExecuteContext(ctx)
	return out.String(), errOut.String(), err
}

func TestStatsAndImpact(t *testing.T) {
	convey.Convey("Given a folder with one match", t, func() {
		dir := writeMatch(t, oneMatch)
		ctx := context.Background()

		convey.Convey("When running stats", func() {
			out, _, err := run(ctx, "stats", "--dir", dir)

			convey.Convey("Then the summary and batting table should be printed", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(out, convey.ShouldContainSubstring, "Loaded 3 deliveries from 1 matches.")
				convey.So(out, convey.ShouldContainSubstring, "Strike Rate")
				convey.So(out, convey.ShouldContainSubstring, "Total: 2")
			})
		})

		convey.Convey("When running impact for one player", func() {
			out, _, err := run(ctx, "impact", "--dir", dir, "--player", "B")

			convey.Convey("Then only that player's row should be printed", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(out, convey.ShouldContainSubstring, "50.00")
				convey.So(out, convey.ShouldNotContainSubstring, "40.00")
			})
		})

		convey.Convey("When running impact for unknown players", func() {
			out, _, err := run(ctx, "impact", "--dir", dir, "-p", "X,Y")

			convey.So(err, convey.ShouldBeNil)
			convey.So(out, convey.ShouldContainSubstring, msgNoImpact)
		})
	})

	convey.Convey("Given an empty folder", t, func() {
		dir := t.TempDir()

		convey.Convey("When running stats", func() {
			out, _, err := run(context.Background(), "stats", "--dir", dir)

			convey.Convey("Then the no-data message should be printed", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(out, convey.ShouldContainSubstring, "No valid match data found in the folder.")
			})
		})
	})
}

func TestCompareCommand(t *testing.T) {
	convey.Convey("Given a folder with two batsmen", t, func() {
		dir := writeMatch(t, oneMatch)
		ctx := context.Background()

		convey.Convey("When comparing without names", func() {
			out, _, err := run(ctx, "compare", "--dir", dir)

			convey.Convey("Then the first two batsmen should be compared", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(out, convey.ShouldContainSubstring, "Strike Rate")
				convey.So(out, convey.ShouldContainSubstring, "Consistency Index")
			})
		})

		convey.Convey("When comparing a player with themselves", func() {
			out, _, err := run(ctx, "compare", "--dir", dir, "A", "A")

			convey.So(err, convey.ShouldBeNil)
			convey.So(out, convey.ShouldContainSubstring, msgSamePlayer)
		})

		convey.Convey("When comparing an unknown player", func() {
			_, _, err := run(ctx, "compare", "--dir", dir, "A", "Z")

			convey.So(errors.Is(err, compare.ErrUnknownPlayer), convey.ShouldBeTrue)
		})

		convey.Convey("When only one name is given", func() {
			_, _, err := run(ctx, "compare", "--dir", dir, "A")

			convey.So(errors.Is(err, ErrCompareArgs), convey.ShouldBeTrue)
		})
	})

	convey.Convey("Given a folder with one batsman", t, func() {
		dir := writeMatch(t, onePlayer)

		convey.Convey("When comparing", func() {
			out, _, err := run(context.Background(), "compare", "--dir", dir)

			convey.So(err, convey.ShouldBeNil)
			convey.So(out, convey.ShouldContainSubstring, msgNeedTwoPlayers)
		})
	})
}

func TestExportAndGenerate(t *testing.T) {
	convey.Convey("Given a generated folder with a corrupt file", t, func() {
		dir := t.TempDir()
		ctx := context.Background()

		out, _, err := run(ctx, "generate", "--dir", dir, "--matches", "2", "--corrupt", "1", "--seed", "7")
		convey.So(err, convey.ShouldBeNil)
		convey.So(out, convey.ShouldContainSubstring, "Generated 3 files")

		convey.Convey("When running stats", func() {
			out, errOut, err := run(ctx, "stats", "--dir", dir)

			convey.Convey("Then the corrupt file should be reported as a warning", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(out, convey.ShouldContainSubstring, "from 2 matches")
				convey.So(errOut, convey.ShouldContainSubstring, "warning: could not load corrupt_01.yaml")
			})
		})

		convey.Convey("When exporting to CSV", func() {
			target := filepath.Join(t.TempDir(), "csv")
			_, _, err := run(ctx, "export", "--dir", dir, "--format", "csv", "--out", target)

			convey.Convey("Then the three tables should be written", func() {
				convey.So(err, convey.ShouldBeNil)
				for _, name := range []string{"deliveries.csv", "batting.csv", "impact.csv"} {
					_, statErr := os.Stat(filepath.Join(target, name))
					convey.So(statErr, convey.ShouldBeNil)
				}
			})
		})

		convey.Convey("When exporting to an unknown format", func() {
			_, _, err := run(ctx, "export", "--dir", dir, "--format", "pdf", "--out", t.TempDir())

			convey.So(errors.Is(err, export.ErrUnknownFormat), convey.ShouldBeTrue)
		})
	})
}

func TestRootCommand(t *testing.T) {
	convey.Convey("Given the root command", t, func() {
		ctx := context.Background()

		convey.Convey("When asking for the version", func() {
			out, _, err := run(ctx, "version")

			convey.So(err, convey.ShouldBeNil)
			convey.So(out, convey.ShouldContainSubstring, "cricanalytics dev")
		})

		convey.Convey("When the log level is invalid", func() {
			_, _, err := run(ctx, "stats", "--dir", t.TempDir(), "--log-level", "verbose")

			convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
		})

		convey.Convey("When the config file is missing", func() {
			_, _, err := run(ctx, "stats", "--config", filepath.Join(t.TempDir(), "none.yaml"))

			convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
		})

		convey.Convey("When serving with a cancelled context", func() {
			cctx, cancel := context.WithCancel(ctx)
			cancel()
			_, errOut, err := run(cctx, "serve", "--dir", t.TempDir(), "--addr", "127.0.0.1:0")

			convey.Convey("Then the server should shut down cleanly", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(errOut, convey.ShouldContainSubstring, "server stopped")
			})
		})
	})
}
