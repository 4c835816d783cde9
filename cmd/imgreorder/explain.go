package imgreorder

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/imgreorder/pkg/reorder"
	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

// explainSizes are the list lengths shown in the example table.
var explainSizes = []int{1, 2, 3, 4, 5, 6, 8, 10}

// explainMarkdown returns the explain document with its example table.
func explainMarkdown() string {
	var b strings.Builder
	b.WriteString(strings.TrimRight(msgExplainRaw, "\n"))
	b.WriteString("\n")

	for _, n := range explainSizes {
		letters := make([]string, n)
		for i := range letters {
			letters[i] = string(rune('a' + i))
		}
		fmt.Fprintf(&b, "| %s | %s |\n",
			strings.Join(letters, " "),
			strings.Join(reorder.Reorder(letters), " "))
	}
	return b.String()
}

// renderMarkdown renders content for the terminal with glamour, picking
// the dark or light style from the terminal background. It returns content
// unchanged if glamour cannot render it.
func renderMarkdown(content string) string {
	renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}

func newExplainCmd(state *appState) *cobra.Command {
	return &cobra.Command{
		Use:     "explain",
		Short:   MsgExplainShort,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			content := explainMarkdown()
			out := cmd.OutOrStdout()
			if state.cfg.Output.Color && isTerminal(out) {
				content = renderMarkdown(content)
			}
			_, err := fmt.Fprint(out, content)
			return err
		},
	}
}
