package cli

import (
	"errors"

	"github.com/MakeNowJust/heredoc"
)

var (
	ErrConfigNotFound = errors.New(heredoc.Doc(`
	Config file not found. Loading from defaults...

	Run "meridian config init" to initialize a new configuration file
	Run "meridian help environment" for more information.

	Alternatively, make a "meridian.yaml" file in the current directory from the example given
`))
)
