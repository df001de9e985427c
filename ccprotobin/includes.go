package ccprotobin

import (
	"fmt"

	"shanhu.io/ccproto"
	"shanhu.io/misc/errcode"
)

func cmdIncludes(args []string) error {
	flags := cmdFlags.New()
	c := new(config)
	declareFlags(flags, c)
	args = flags.ParseArgs(args)

	ws, err := c.workspace()
	if err != nil {
		return err
	}
	for _, arg := range args {
		src, err := ccproto.ParsePath(arg)
		if err != nil {
			return errcode.Annotatef(err, "parse %q", arg)
		}
		exec, err := ccproto.ExecRootRelativeOutputPath(src, ws.ProductName)
		if err != nil {
			return err
		}
		fmt.Printf(
			"%s %s %s\n", src, ccproto.RootRelativeOutputPath(src), exec,
		)
	}
	return nil
}
