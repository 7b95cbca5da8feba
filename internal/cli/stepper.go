package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/automata/pkg/domain"
	"github.com/aretw0/automata/pkg/session"
	"github.com/manifoldco/promptui"
)

// Stepper drives a session one step at a time.
type Stepper struct {
	Session *session.Session
	Printer *Printer
	// Steps caps the moves of machines that never exhaust their input; 0 means no cap.
	Steps int
	Trace bool
}

// Batch steps until the input is consumed, the machine halts or Steps is reached.
func (s *Stepper) Batch() (domain.StepResult, error) {
	res := domain.StepResult{Step: -1}
	s.Session.Restart()
	for i := 0; s.Steps == 0 || i < s.Steps; i++ {
		next, err := s.Session.Step()
		if err != nil {
			return res, err
		}
		if next.Halted {
			s.show(next)
			return next, nil
		}
		// Exhausted or stuck engines stop advancing the counter.
		if next.Step == res.Step {
			break
		}
		s.show(next)
		res = next
	}
	return res, nil
}

func (s *Stepper) show(res domain.StepResult) {
	s.Printer.Result(res)
	if s.Trace && !res.Stuck && len(res.Trace) > 0 {
		s.Printer.Trace(res.Trace[len(res.Trace)-phasesPerStep(res):])
	}
}

// phasesPerStep is the number of trailing trace entries produced by the last step.
func phasesPerStep(res domain.StepResult) int {
	n := 0
	for i := len(res.Trace) - 1; i >= 0 && res.Trace[i].Step == res.Step; i-- {
		n++
	}
	return n
}

// Interactive prompts before every step. Enter steps, "r" restarts and "q" quits.
func (s *Stepper) Interactive(in io.ReadCloser, out io.WriteCloser) error {
	s.Session.Restart()
	fmt.Fprintln(out, "enter: step, r: restart, q: quit")
	for {
		prompt := promptui.Prompt{
			Label:  "step",
			Stdin:  in,
			Stdout: out,
		}
		answer, err := prompt.Run()
		if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) || errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "q", "quit", "exit":
			return nil
		case "r", "restart":
			s.Session.Restart()
			s.Printer.Configurations(s.Session.Engine().Configurations())
			continue
		}

		res, err := s.Session.Step()
		if err != nil {
			return err
		}
		s.show(res)
		if res.Halted {
			fmt.Fprintln(out, "machine halted")
			return nil
		}
	}
}
