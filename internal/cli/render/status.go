package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/payday-labs/sndeploy/internal/domain"
)

// RenderStatus prints a single transaction status
func RenderStatus(out io.Writer, hash domain.Felt, status domain.TransactionStatus, jsonOutput bool) error {
	if jsonOutput {
		return writeJSON(out, map[string]interface{}{
			"hash":     hash,
			"status":   status,
			"accepted": status.IsAccepted(),
		})
	}
	_, err := fmt.Fprintf(out, "%s %s\n",
		color.New(color.Faint).Sprint(hash.Hex()),
		StatusColor(status).Sprintf("%s (%s)", HumanStatus(status), status))
	return err
}
