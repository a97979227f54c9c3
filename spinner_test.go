package askstorm

import (
	"strings"
	"sync"
	"testing"
	"time"
)

func TestSpinnerSucceedCommitsOnce(t *testing.T) {
	p, out := testPrompter(t, "")
	s := p.Spinner("working")
	s.Succeed("all done")
	s.Succeed("again")
	s.Fail("also ignored")

	text := out.String()
	if !strings.Contains(text, "all done") {
		t.Errorf("output missing the success message")
	}
	if strings.Contains(text, "again") || strings.Contains(text, "also ignored") {
		t.Errorf("terminal transition happened more than once")
	}
}

func TestSpinnerFail(t *testing.T) {
	p, out := testPrompter(t, "")
	s := p.Spinner("working")
	s.Fail("broke")
	if !strings.Contains(out.String(), "broke") {
		t.Errorf("output missing the failure message")
	}
}

func TestSpinnerSetMessage(t *testing.T) {
	p, out := testPrompter(t, "")
	s := p.Spinner("phase one")
	s.SetMessage("phase two")
	s.Stop("finished")

	text := out.String()
	if !strings.Contains(text, "phase two") {
		t.Errorf("output missing the updated message")
	}
	if !strings.Contains(text, "finished") {
		t.Errorf("output missing the stop message")
	}
}

func TestSpinnerSetMessageAfterStopIgnored(t *testing.T) {
	p, out := testPrompter(t, "")
	s := p.Spinner("working")
	s.Stop("done")
	s.SetMessage("too late")
	if strings.Contains(out.String(), "too late") {
		t.Errorf("message mutated after the terminal transition")
	}
}

func TestSpinnerAdvancesFrames(t *testing.T) {
	p, out := testPrompter(t, "")
	s := p.Spinner("spinning")
	time.Sleep(5 * DefaultTheme().SpinnerInterval)
	s.Stop("done")

	// At least two distinct animation frames should have been painted.
	frames := DefaultTheme().SpinnerFrames
	seen := 0
	for _, f := range frames {
		if strings.Contains(out.String(), f) {
			seen++
		}
	}
	if seen < 2 {
		t.Errorf("saw %d frames, want animation across at least 2", seen)
	}
}

func TestSpinnerConcurrentFinish(t *testing.T) {
	p, _ := testPrompter(t, "")
	s := p.Spinner("racing")

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Succeed("done")
		}()
	}
	wg.Wait()
}
