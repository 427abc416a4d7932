// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	InterpreterNotFoundId Id = iota + 1
	TargetNotFoundId
	WorkdirUnavailableId
	ConfigLoadFailedId
	SpawnFailedId
)

type MarkdownMsg string

type Issue struct {
	id    Id          // ID used to lookup the issue
	mdMsg MarkdownMsg // Markdown text that will be rendered
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) Render(stylePath string) (string, error) {
	return render(string(i.mdMsg), stylePath)
}

var (
	render = glamour.Render

	interpreterNotFoundIssue = &Issue{
		id: InterpreterNotFoundId,
		mdMsg: `
# No Python interpreter found!

None of the probed launchers (py, python3, python) are on your PATH, so the
target cannot be started.

## Things you can try:
- Install Python 3: https://www.python.org/downloads/
- On Windows, enable the "py launcher" option in the installer
- Check that the install directory is on your PATH:
~~~
$ python3 --version
~~~
- Switch the invocation style if only one launcher form is installed:
~~~
$ rundbg --style direct
~~~`,
	}

	targetNotFoundIssue = &Issue{
		id: TargetNotFoundId,
		mdMsg: `
# Target script not found!

The interpreter started, but the target script does not exist in the working
directory.

## Things you can try:
- Check the target filename:
~~~
$ rundbg --target app.py
~~~
- Check the working directory (defaults to the directory containing rundbg):
~~~
$ rundbg --workdir /path/to/project
~~~
- Set a permanent default in your config file:
~~~toml
target = "app.py"
~~~`,
	}

	workdirUnavailableIssue = &Issue{
		id: WorkdirUnavailableId,
		mdMsg: `
# Working directory unavailable!

The launcher could not enter its working directory, so nothing was started.

## Things you can try:
- Check that the directory exists and is readable
- Override the working directory:
~~~
$ rundbg --workdir /path/to/project
~~~`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

Could not load the rundbg configuration file.

## Configuration file locations:
- Linux: ~/.config/rundbg/config.toml
- macOS: ~/Library/Application Support/rundbg/config.toml
- Windows: %APPDATA%\rundbg\config.toml

## Things you can try:
- Create a default configuration:
~~~
$ rundbg config init
~~~
- Check the TOML syntax
- Remove the config file to use defaults

## Example configuration:
~~~toml
target = "app.py"
style = "direct"

[ui]
verbose = false
no_pause = false
~~~`,
	}

	spawnFailedIssue = &Issue{
		id: SpawnFailedId,
		mdMsg: `
# Failed to start the target!

The child process could not be spawned.

## Common causes:
- Interpreter not found in PATH
- Permission denied on the interpreter or target
- Working directory removed between resolve and spawn

## Things you can try:
- Review the interpreter probe results printed above the divider
- Run with verbose mode for more details:
~~~
$ rundbg --verbose
~~~`,
	}

	issues = map[Id]*Issue{
		interpreterNotFoundIssue.Id(): interpreterNotFoundIssue,
		targetNotFoundIssue.Id():      targetNotFoundIssue,
		workdirUnavailableIssue.Id():  workdirUnavailableIssue,
		configLoadFailedIssue.Id():    configLoadFailedIssue,
		spawnFailedIssue.Id():         spawnFailedIssue,
	}
)

func Values() []*Issue {
	return maps.Values(issues)
}

func Get(id Id) *Issue {
	return issues[id]
}

// Sorted returns all issues ordered by id, for stable listing output.
func Sorted() []*Issue {
	all := Values()
	slices.SortFunc(all, func(a, b *Issue) int { return int(a.Id() - b.Id()) })
	return all
}
