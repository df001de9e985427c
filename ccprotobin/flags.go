package ccprotobin

import (
	"shanhu.io/ccproto"
	"shanhu.io/misc/flagutil"
)

var cmdFlags = flagutil.NewFactory("ccproto")

// config is the configuration of a command line run.
type config struct {
	Workspace string // Workspace file.
	Build     string // Build file that declares targets.
	Out       string // Output report.
	Product   string // Overrides the workspace's product name.
	Workers   int    // Overrides the workspace's worker count.
	Verbose   bool
}

func declareFlags(flags *flagutil.FlagSet, c *config) {
	flags.StringVar(
		&c.Workspace, "workspace", ccproto.WorkspaceFileName,
		"workspace file; optional",
	)
	flags.StringVar(
		&c.Build, "build", ccproto.BuildFileName, "build file to analyze",
	)
	flags.StringVar(&c.Out, "out", "analysis.json", "output report file")
	flags.StringVar(&c.Product, "product", "", "product name override")
	flags.IntVar(&c.Workers, "workers", 0, "worker count override")
	flags.BoolVar(&c.Verbose, "v", false, "log every composed target")
}

func (c *config) workspace() (*ccproto.Workspace, error) {
	ws, err := ccproto.ReadWorkspace(c.Workspace)
	if err != nil {
		return nil, err
	}
	if c.Product != "" {
		ws.ProductName = c.Product
	}
	if c.Workers > 0 {
		ws.Workers = c.Workers
	}
	return ws, nil
}
