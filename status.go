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

//go:generate stringer -type=Status -linecomment -output=status_string.go

// Status is the state of the analysis of a single target.
type Status int

// Analysis states. Composed and Rejected are terminal; a rejected target is
// not retried under the same configuration.
const (
	StatusPending  Status = iota // pending
	StatusComposed               // composed
	StatusRejected               // rejected
)

// MarshalText encodes the status with its name.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
