package replay

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pad2048/internal/core"
	"github.com/vovakirdan/pad2048/internal/game2048"
	"github.com/vovakirdan/pad2048/internal/gesture"
	"github.com/vovakirdan/pad2048/internal/session"
)

// Result is the outcome of a replay.
type Result struct {
	Ticks []session.TickResult
	Final session.Snapshot
}

// Options configures a replay run.
type Options struct {
	Out    io.Writer          // Frames are printed here; nil prints nothing
	Tones  session.TonePlayer // Optional
	Logger *log.Logger
}

// Run plays the script tick by tick. Each step's events go through the
// decoder's event channel and are drained before the tick that polls them.
// Playback stops early at game over or when ctx is cancelled.
func Run(ctx context.Context, s Script, opts Options) (Result, error) {
	if err := s.Validate(); err != nil {
		return Result{}, err
	}
	mode, _ := gesture.ParseMode(s.Mode)

	screen := core.NewScreen(game2048.BoardWidth, game2048.BoardHeight)
	renderer := game2048.NewScreenRenderer(screen, 0)

	dec := gesture.NewDecoder(mode)
	sess := session.New(session.Options{
		InitialTiles: s.InitialTiles,
		Rand:         game2048.NewRand(s.Seed),
		Logger:       opts.Logger,
	}, dec, session.Ports{Renderer: renderer, Tones: opts.Tones})
	if s.Board != nil {
		sess.SetBoard(*s.Board)
	}

	sess.Render()
	printFrame(opts.Out, "start", screen)

	var res Result
	tick := func() bool {
		tr := sess.Tick()
		res.Ticks = append(res.Ticks, tr)
		printFrame(opts.Out, fmt.Sprintf("tick %d %s", tr.Tick, tr.Direction), screen)
		return tr.GameOver
	}

	for _, st := range s.Steps {
		if err := ctx.Err(); err != nil {
			res.Final = sess.Snapshot()
			return res, err
		}

		events := st.events(dec.State().Mode)
		for i, ev := range events {
			dec.Events() <- ev
			if (i+1)%gesture.EventBuffer == 0 {
				dec.Drain()
			}
		}
		dec.Drain()

		// A step with only idle ticks has no input tick of its own
		if len(events) > 0 || st.Idle == 0 {
			if tick() {
				break
			}
		}
		over := false
		for range st.Idle {
			if over = tick(); over {
				break
			}
		}
		if over {
			break
		}
	}

	res.Final = sess.Snapshot()
	if opts.Out != nil {
		fmt.Fprintf(opts.Out, "score %d  max %d  state %s\n", res.Final.Score, res.Final.MaxTile, res.Final.State)
	}
	return res, nil
}

func printFrame(w io.Writer, title string, screen *core.Screen) {
	if w == nil {
		return
	}
	fmt.Fprintf(w, "-- %s\n%s\n", title, screen.String())
}
