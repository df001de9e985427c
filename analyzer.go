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

package ccproto

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// IncludePaths are the grepped include paths derived from a source file.
type IncludePaths struct {
	Src              PathFragment
	RootRelative     PathFragment
	ExecRootRelative PathFragment
}

// TargetResult is the outcome of analyzing one proto library.
type TargetResult struct {
	Label  string
	Status Status

	Target *ConfiguredTarget `json:",omitempty"`
	Digest string            `json:",omitempty"`

	Includes []*IncludePaths `json:",omitempty"`

	Error string `json:",omitempty"`
	Err   error  `json:"-"`
}

// Result is the outcome of analyzing a graph.
type Result struct {
	Product string
	Targets []*TargetResult
}

// Rejected returns the results of the targets that failed analysis.
func (r *Result) Rejected() []*TargetResult {
	var ret []*TargetResult
	for _, t := range r.Targets {
		if t.Status == StatusRejected {
			ret = append(ret, t)
		}
	}
	return ret
}

// Analyzer composes the proto libraries of a graph. It plays the part of the
// graph engine: every target is composed on its own goroutine, and a failed
// target never stops the others.
type Analyzer struct {
	Composer *Composer
	Product  string
	Workers  int
	Log      zerolog.Logger
}

// NewAnalyzer creates an analyzer for cc_proto_library targets.
func NewAnalyzer(product string, workers int) *Analyzer {
	return &Analyzer{
		Composer: CcProtoLibrary,
		Product:  product,
		Workers:  workers,
		Log:      zerolog.Nop(),
	}
}

func (a *Analyzer) analyze(g *Graph, p *protoNode) *TargetResult {
	res := &TargetResult{Label: p.name, Status: StatusPending}
	reject := func(err error) *TargetResult {
		res.Status = StatusRejected
		res.Err = err
		res.Error = err.Error()
		a.Log.Warn().Str("target", p.name).Err(err).Msg("rejected")
		return res
	}

	var deps []Target
	for _, dep := range p.deps {
		if t, ok := g.libraries[dep]; ok {
			deps = append(deps, t)
		}
	}
	ctx := NewRuleContext(p.name, map[string][]Target{
		a.Composer.Attr: deps,
	})
	t, err := a.Composer.Compose(ctx)
	if err != nil {
		return reject(err)
	}

	var includes []*IncludePaths
	for _, src := range p.srcs {
		exec, err := ExecRootRelativeOutputPath(src, a.Product)
		if err != nil {
			return reject(err)
		}
		includes = append(includes, &IncludePaths{
			Src:              src,
			RootRelative:     RootRelativeOutputPath(src),
			ExecRootRelative: exec,
		})
	}

	digest, err := t.Digest()
	if err != nil {
		return reject(err)
	}

	res.Status = StatusComposed
	res.Target = t
	res.Digest = digest
	res.Includes = includes
	a.Log.Debug().
		Str("target", p.name).
		Str("digest", digest).
		Int("providers", t.Providers().Len()).
		Msg("composed")
	return res
}

// Analyze composes all proto libraries of g. It only returns an error when
// ctx is done; analysis errors are reported per target in the result.
func (a *Analyzer) Analyze(ctx context.Context, g *Graph) (*Result, error) {
	if _, err := GreppedIncludes(a.Product); err != nil {
		return nil, err
	}

	results := make([]*TargetResult, len(g.protos))
	eg, ctx := errgroup.WithContext(ctx)
	if a.Workers > 0 {
		eg.SetLimit(a.Workers)
	}
	for i, p := range g.protos {
		i, p := i, p
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = a.analyze(g, p)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return &Result{
		Product: a.Product,
		Targets: results,
	}, nil
}
