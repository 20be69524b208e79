package entity

import (
	"context"

	"github.com/spf13/cobra"
)

// CommandRequest carries the parsed cobra invocation into a handler.
type CommandRequest struct {
	Cmd  *cobra.Command
	Args []string
}

type HandlerFunction func(context.Context, *CommandRequest) error

type CobraFunction func(cmd *cobra.Command, args []string) error
