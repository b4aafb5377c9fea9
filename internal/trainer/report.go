package trainer

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

const lossHeader = "============= Loss =============="

// WriteReport prints the accuracies followed by one line per checkpoint.
func WriteReport(w io.Writer, res *Result) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Train set accuracy: %v\n", res.TrainAccuracy)
	fmt.Fprintf(&b, "Test set accuracy: %v\n", res.TestAccuracy)
	b.WriteString(color.New(color.FgCyan, color.Bold).Sprint(lossHeader))
	b.WriteByte('\n')
	for _, cp := range res.Trace {
		fmt.Fprintf(&b, "Epoch%d: %v\n", cp.Epoch, cp.Loss)
	}
	_, err := io.WriteString(w, b.String())
	return err
}
