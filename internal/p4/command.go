// Copyright (C) 2025 Dyne.org foundation
// designed, written and maintained by Denis Roio <jaromil@dyne.org>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package p4

import "strconv"

// Program is the Perforce client binary invoked by the exec runner.
const Program = "p4"

// Op enumerates the supported Perforce operations.
type Op string

const (
	OpStatus  Op = "status"
	OpSync    Op = "sync"
	OpEdit    Op = "edit"
	OpAdd     Op = "add"
	OpSubmit  Op = "submit"
	OpRevert  Op = "revert"
	OpOpened  Op = "opened"
	OpChanges Op = "changes"
	OpInfo    Op = "info"
)

// Command is the typed form of a single Perforce operation. Only the
// fields that belong to the operation are meaningful; the rest stay at
// their zero value.
type Command struct {
	Op          Op
	Path        string   // status, sync, changes; empty means unset
	Force       bool     // sync
	Files       []string // edit, add, revert, submit; nil on submit means "all opened files"
	Description string   // submit
	Changelist  string   // opened; empty means default changelist
	Max         int      // changes
}

// Invocation is the program name and argument vector derived from a
// Command. Arguments are passed as a discrete vector, never through a
// shell, so no field is quoted or escaped here.
type Invocation struct {
	Program string
	Args    []string
}

// Status reports files opened in the workspace, optionally under path.
func Status(path string) Command {
	return Command{Op: OpStatus, Path: path}
}

// Sync fetches depot files into the workspace.
func Sync(path string, force bool) Command {
	return Command{Op: OpSync, Path: path, Force: force}
}

// Edit opens files for edit.
func Edit(files []string) Command {
	return Command{Op: OpEdit, Files: files}
}

// Add opens files for add.
func Add(files []string) Command {
	return Command{Op: OpAdd, Files: files}
}

// Submit submits a change with the given description. A nil files slice
// submits everything currently opened.
func Submit(description string, files []string) Command {
	return Command{Op: OpSubmit, Description: description, Files: files}
}

// Revert discards local changes to files.
func Revert(files []string) Command {
	return Command{Op: OpRevert, Files: files}
}

// Opened lists opened files, optionally restricted to a changelist.
func Opened(changelist string) Command {
	return Command{Op: OpOpened, Changelist: changelist}
}

// Changes lists up to max recent changelists, optionally under path.
func Changes(max int, path string) Command {
	return Command{Op: OpChanges, Max: max, Path: path}
}

// Info reports client and server information.
func Info() Command {
	return Command{Op: OpInfo}
}

// Invocation derives the argument vector for the command. It is a pure
// function of the command fields.
func (c Command) Invocation() Invocation {
	var args []string
	switch c.Op {
	case OpStatus:
		args = append(args, "opened")
		if c.Path != "" {
			args = append(args, c.Path)
		}
	case OpSync:
		args = append(args, "sync")
		if c.Force {
			args = append(args, "-f")
		}
		args = append(args, c.Path)
	case OpEdit, OpAdd, OpRevert:
		args = append(args, string(c.Op))
		args = append(args, c.Files...)
	case OpSubmit:
		args = append(args, "submit", "-d", c.Description)
		args = append(args, c.Files...)
	case OpOpened:
		args = append(args, "opened")
		if c.Changelist != "" {
			args = append(args, "-c", c.Changelist)
		}
	case OpChanges:
		args = append(args, "changes", "-m", strconv.Itoa(c.Max))
		if c.Path != "" {
			args = append(args, c.Path)
		}
	case OpInfo:
		args = append(args, "info")
	}
	return Invocation{Program: Program, Args: args}
}
