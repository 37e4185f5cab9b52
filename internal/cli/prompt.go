/*
Package cli implements the sleepwise command surface.

Commands:

	predict   collect today's inputs, predict sleep quality, append to history
	history   list recorded entries with summary statistics
	trends    render duration/quality charts from the history
	train     regenerate the synthetic training set and retrain the model
	version   show version information

Interactive prompts re-ask on malformed input; every other failure surfaces
as a terminated operation with a descriptive message.
*/
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/khanglvm/sleepwise/internal/sleep"
)

// prompter reads typed answers from an input stream, re-prompting until the
// answer parses. Injectable streams keep the prompt loop testable.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewReader(in), out: out}
}

// readLine fetches one trimmed answer. io.EOF propagates so a closed stdin
// aborts the whole interaction instead of spinning.
func (p *prompter) readLine(label string) (string, error) {
	fmt.Fprint(p.out, label)
	line, err := p.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// readTime prompts until a valid time of day is entered.
func (p *prompter) readTime(label string) (sleep.TimeOfDay, error) {
	for {
		answer, err := p.readLine(label)
		if err != nil {
			return sleep.TimeOfDay{}, err
		}
		t, err := sleep.ParseTimeOfDay(answer)
		if err != nil {
			fmt.Fprintln(p.out, "❌ Examples: 10 pm, 6 am, 22, 22:30")
			continue
		}
		return t, nil
	}
}

// readIntRange prompts until an integer within [min, max] is entered.
func (p *prompter) readIntRange(label string, min, max int) (int, error) {
	for {
		answer, err := p.readLine(label)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(answer)
		if err != nil {
			fmt.Fprintln(p.out, "❌ Enter a valid number")
			continue
		}
		if n < min || n > max {
			fmt.Fprintf(p.out, "❌ Must be between %d and %d\n", min, max)
			continue
		}
		return n, nil
	}
}

// readMood prompts until a known mood name is entered.
func (p *prompter) readMood(label string) (sleep.Mood, error) {
	for {
		answer, err := p.readLine(label)
		if err != nil {
			return 0, err
		}
		m, err := sleep.ParseMood(answer)
		if err != nil {
			fmt.Fprintf(p.out, "❌ Options: %s\n", strings.Join(sleep.MoodNames(), ", "))
			continue
		}
		return m, nil
	}
}

// maxCount bounds the open-ended numeric prompts. Generous on purpose; real
// validation is the non-negativity check.
const maxCount = 1440

// collectInput walks the fixed prompt order and assembles a DailyInput.
func collectInput(p *prompter) (sleep.DailyInput, error) {
	var input sleep.DailyInput
	var err error

	if input.Bedtime, err = p.readTime("Bedtime (e.g., 10 pm, 22, 22:30): "); err != nil {
		return input, err
	}
	if input.WakeTime, err = p.readTime("Wake-up time (e.g., 6 am, 6, 06:30): "); err != nil {
		return input, err
	}
	if input.Stress, err = p.readIntRange("Stress level (1-5): ", 1, 5); err != nil {
		return input, err
	}
	if input.ScreenTimeMinutes, err = p.readIntRange("Screen time before bed (minutes): ", 0, maxCount); err != nil {
		return input, err
	}
	if input.CaffeineServings, err = p.readIntRange("Caffeine intake (drinks today): ", 0, maxCount); err != nil {
		return input, err
	}
	if input.ExerciseMinutes, err = p.readIntRange("Exercise duration (minutes): ", 0, maxCount); err != nil {
		return input, err
	}
	if input.Mood, err = p.readMood(fmt.Sprintf("Mood before sleep (%s): ", strings.Join(sleep.MoodNames(), "/"))); err != nil {
		return input, err
	}
	if input.Interruptions, err = p.readIntRange("Sleep interruptions (count): ", 0, maxCount); err != nil {
		return input, err
	}

	return input, nil
}
