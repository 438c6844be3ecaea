package breakout

import "fmt"

// EventKind identifies a discrete simulation event.
type EventKind int

const (
	EventBrickDamaged   EventKind = iota // Brick hit, still alive
	EventBrickDestroyed                  // Brick health reached zero and was removed
	EventRoundWon                        // Last brick destroyed
	EventRoundLost                       // Ball crossed the bottom boundary
	EventShowPanel                       // End-of-round panel should be displayed
	EventClearPanel                      // End-of-round panel should be removed
	EventRestarted                       // Entities respawned for a new round
)

// String returns a short name for logs.
func (k EventKind) String() string {
	switch k {
	case EventBrickDamaged:
		return "brick_damaged"
	case EventBrickDestroyed:
		return "brick_destroyed"
	case EventRoundWon:
		return "round_won"
	case EventRoundLost:
		return "round_lost"
	case EventShowPanel:
		return "show_panel"
	case EventClearPanel:
		return "clear_panel"
	case EventRestarted:
		return "restarted"
	default:
		return fmt.Sprintf("event(%d)", int(k))
	}
}

// Event is something the rendering side may want to react to.
// Only the fields relevant to Kind are set.
type Event struct {
	Kind   EventKind
	Brick  int    // Brick ID for brick events
	Health int    // Remaining health for EventBrickDamaged
	Score  int    // Score after the event (brick, round and restart events)
	Panel  *Panel // Set for EventShowPanel
}

// Panel is the end-of-round message. Comparison is empty on the first round.
type Panel struct {
	Headline   string
	Comparison string
	Hint       string
}

// RestartHint is the static hint line of the end-of-round panel.
const RestartHint = "Press R to restart"

// newPanel builds the panel text for a finished round.
func newPanel(status Status, score int, lastScore int, hasLast bool) *Panel {
	headline := fmt.Sprintf("Game Over! Final Score: %d", score)
	if status == StatusWon {
		headline = fmt.Sprintf("Congratulations! Final Score: %d", score)
	}

	p := &Panel{
		Headline: headline,
		Hint:     RestartHint,
	}
	if hasLast {
		p.Comparison = ComparisonText(score, lastScore)
	}
	return p
}

// ComparisonText compares this round's score with the previous round's.
func ComparisonText(score, last int) string {
	switch {
	case score > last:
		return "Better than just now"
	case score < last:
		return "Keep up the good work"
	default:
		return "Keep it up"
	}
}
