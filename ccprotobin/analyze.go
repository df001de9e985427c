// Copyright (C) 2022  Shanhu Tech Inc.
//
// This program is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the
// Free Software Foundation, either version 3 of the License, or (at your
// option) any later version.
//
// This program is distributed in the hope that it will be useful, but WITHOUT
// ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or
// FITNESS FOR A PARTICULAR PURPOSE.  See the GNU Affero General Public License
// for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package ccprotobin

import (
	"context"
	"os"
	"strings"

	"shanhu.io/ccproto"
	"shanhu.io/misc/errcode"
	"shanhu.io/misc/idutil"
	"shanhu.io/misc/jsonutil"
	"shanhu.io/misc/strutil"
	"shanhu.io/text/lexing"
)

func shortDigest(d string) string {
	return idutil.Short(strings.TrimPrefix(d, "sha256:"))
}

func cmdAnalyze(args []string) error {
	flags := cmdFlags.New()
	c := new(config)
	declareFlags(flags, c)
	flags.ParseArgs(args)

	log := newLogger(c.Verbose)

	wd, err := os.Getwd()
	if err != nil {
		return errcode.Annotate(err, "get work dir")
	}
	ws, err := c.workspace()
	if err != nil {
		return err
	}

	g, errs := ccproto.LoadGraph(c.Build)
	if errs != nil {
		lexing.FprintErrs(os.Stderr, errs, wd)
		return errcode.InvalidArgf("load got %d errors", len(errs))
	}

	a := ccproto.NewAnalyzer(ws.ProductName, ws.Workers)
	a.Log = log
	res, err := a.Analyze(context.Background(), g)
	if err != nil {
		return errcode.Annotate(err, "analyze")
	}

	if err := jsonutil.WriteFile(c.Out, res); err != nil {
		return errcode.Annotate(err, "write report")
	}

	for _, t := range res.Targets {
		if t.Status == ccproto.StatusComposed {
			log.Info().
				Str("target", t.Label).
				Str("digest", shortDigest(t.Digest)).
				Msg("composed")
		}
	}

	rejected := make(map[string]bool)
	for _, t := range res.Rejected() {
		rejected[t.Label] = true
		log.Error().Str("target", t.Label).Msg(t.Error)
	}
	if len(rejected) > 0 {
		return errcode.InvalidArgf(
			"%d targets rejected: %s",
			len(rejected), strings.Join(strutil.SortedList(rejected), ", "),
		)
	}
	return nil
}
