package views

import (
	"context"
	"io"
	"sync"

	"github.com/a-h/templ"

	"github.com/eringen/inkwell"
)

// UtterancesScript is the comment widget client.
const UtterancesScript = "https://utteranc.es/client.js"

// MountState is the lifecycle of a comment widget on one page.
type MountState int

const (
	Unmounted MountState = iota
	Mounted
)

func (s MountState) String() string {
	if s == Mounted {
		return "mounted"
	}
	return "unmounted"
}

// CommentMount inserts the comment script at most once. Rendering its
// component again after a successful mount yields an empty section, so a
// re-rendered node never loads the widget twice.
type CommentMount struct {
	cfg inkwell.CommentsConfig

	mu    sync.Mutex
	state MountState
}

// NewCommentMount returns an unmounted widget for cfg.
func NewCommentMount(cfg inkwell.CommentsConfig) *CommentMount {
	return &CommentMount{cfg: cfg}
}

// State reports whether the script has been inserted.
func (m *CommentMount) State() MountState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Component renders the comment section.
func (m *CommentMount) Component() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m.mu.Lock()
		defer m.mu.Unlock()

		out := &htmlWriter{w: w}
		out.raw(`<section class="comments">`)
		attach := m.state == Unmounted && m.cfg.Repo != ""
		if attach {
			out.raw(`<script src="`, UtterancesScript, `" repo="`)
			out.text(m.cfg.Repo)
			out.raw(`" issue-term="`)
			out.text(m.cfg.IssueTerm)
			out.raw(`" label="`)
			out.text(m.cfg.Label)
			out.raw(`" theme="`)
			out.text(m.cfg.Theme)
			out.raw(`" crossorigin="anonymous" async></script>`)
		}
		out.raw("</section>\n")
		if out.err != nil {
			return out.err
		}
		if attach {
			m.state = Mounted
		}
		return nil
	})
}
