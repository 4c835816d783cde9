package imgreorder

import (
	"io"
	"path/filepath"

	"github.com/arthur-debert/imgreorder/pkg/types"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog/log"
)

// copyProgress drives a pterm progress bar from the materializer's
// per-file callback. It is a no-op unless w is a terminal.
type copyProgress struct {
	bar *pterm.ProgressbarPrinter
}

func newCopyProgress(w io.Writer, total int, enabled bool) *copyProgress {
	p := &copyProgress{}
	if !enabled || total == 0 || !isTerminal(w) {
		return p
	}

	bar, err := pterm.DefaultProgressbar.
		WithTotal(total).
		WithTitle(MsgProgressTitle).
		WithWriter(w).
		WithRemoveWhenDone(true).
		Start()
	if err != nil {
		log.Debug().Err(err).Msg("Progress bar unavailable")
		return p
	}
	p.bar = bar
	return p
}

func (p *copyProgress) onCopied(done, total int, m types.Mapping) {
	if p.bar == nil {
		return
	}
	p.bar.UpdateTitle(MsgProgressTitle + " " + filepath.Base(m.Target))
	p.bar.Increment()
}

func (p *copyProgress) stop() {
	if p.bar == nil {
		return
	}
	_, _ = p.bar.Stop()
}
