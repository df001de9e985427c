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
	"runtime"

	"shanhu.io/misc/errcode"
	"shanhu.io/misc/jsonx"
	"shanhu.io/misc/osutil"
)

// WorkspaceFileName is the default name of the workspace file.
const WorkspaceFileName = "WORKSPACE.ccproto"

// DefaultProductName is the product used when the workspace does not name
// one.
const DefaultProductName = "bazel"

// Workspace holds the settings shared by all targets of a workspace.
type Workspace struct {
	// ProductName namespaces the output directory, "<product>-out".
	ProductName string `json:",omitempty"`

	// Workers limits the number of targets analyzed at the same time.
	// Zero means the number of CPUs.
	Workers int `json:",omitempty"`
}

func (ws *Workspace) fillDefaults() {
	if ws.ProductName == "" {
		ws.ProductName = DefaultProductName
	}
	if ws.Workers <= 0 {
		ws.Workers = runtime.NumCPU()
	}
}

// ReadWorkspace reads a workspace file. A missing file gives the default
// workspace.
func ReadWorkspace(f string) (*Workspace, error) {
	ws := new(Workspace)
	if f != "" {
		ok, err := osutil.IsRegular(f)
		if err != nil {
			return nil, errcode.Annotate(err, "check workspace file")
		}
		if ok {
			if err := jsonx.ReadFile(f, ws); err != nil {
				return nil, errcode.Annotate(err, "read workspace")
			}
		}
	}
	ws.fillDefaults()
	if _, err := GreppedIncludes(ws.ProductName); err != nil {
		if re, ok := err.(*RuleError); ok {
			re.Attr = "ProductName"
			return nil, re
		}
		return nil, errcode.Annotate(err, "workspace product name")
	}
	return ws, nil
}
