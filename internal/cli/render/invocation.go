package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/payday-labs/sndeploy/internal/domain"
	"github.com/payday-labs/sndeploy/internal/usecase"
)

// InvocationRenderer prints the lifecycle of an invocation
type InvocationRenderer struct {
	out io.Writer
}

// NewInvocationRenderer creates a new invocation renderer
func NewInvocationRenderer(out io.Writer) *InvocationRenderer {
	return &InvocationRenderer{out: out}
}

// TransactionSubmitted prints the transaction hash
func (r *InvocationRenderer) TransactionSubmitted(hash domain.Felt) {
	fmt.Fprintf(r.out, "%s\n\n", color.New(color.FgMagenta).Sprintf("Transaction Hash: %s", hash))
}

// TransactionSettled prints a success line for accepted statuses and a failure line otherwise
func (r *InvocationRenderer) TransactionSettled(hash domain.Felt, status domain.TransactionStatus) {
	if status.IsAccepted() {
		fmt.Fprintln(r.out, color.New(color.FgGreen, color.Bold).Sprintf("Tx Results: Payday-%s", status))
	} else {
		fmt.Fprintln(r.out, color.New(color.FgRed, color.Bold).Sprintf("Tx Results: %s", status))
	}
	fmt.Fprintln(r.out)
}

var _ usecase.InvocationReporter = (*InvocationRenderer)(nil)
