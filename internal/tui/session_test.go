// internal/tui/session_test.go
package tui

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mwiater/chainsight/internal/appconfig"
	"github.com/mwiater/chainsight/internal/intel"
	"github.com/mwiater/chainsight/internal/rag"
)

const testCSV = `SKU,Product type,Price,Stock levels,Number of products sold,Supplier name,Location,Lead time,Defect rates,Shipping times,Transportation modes,Routes,Sales history
SKU-100,haircare,12.50,240,960,Acme Supply,Mumbai,7,1.2,4,Road,Route A,
`

func newTestModel(t *testing.T) *model {
	t.Helper()

	dataPath := filepath.Join(t.TempDir(), "products.csv")
	if err := os.WriteFile(dataPath, []byte(testCSV), 0o644); err != nil {
		t.Fatalf("writing test data: %v", err)
	}
	cfg := &appconfig.Config{DataFile: dataPath}
	system, err := intel.New(*cfg, nil)
	if err != nil {
		t.Fatalf("intel.New: %v", err)
	}
	return initialModel(context.Background(), cfg, system)
}

// TestUpdate verifies the model handles quit keys, window sizing, and
// composed answers.
func TestUpdate(t *testing.T) {
	m := newTestModel(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Error("Expected a quit command, but got nil")
	}

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Error("Expected a quit command, but got nil")
	}

	newModel, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = newModel.(*model)
	if m.width != 100 || m.height != 40 {
		t.Errorf("Expected width 100 and height 40, got %d and %d", m.width, m.height)
	}

	m.isLoading = true
	newModel, _ = m.Update(answerMsg{
		question: "safety stock?",
		answer:   rag.Answer{Text: "Keep 20% safety stock.", Mode: rag.ModeTemplate},
	})
	m = newModel.(*model)
	if m.isLoading {
		t.Error("Expected loading to stop after an answer arrives")
	}
	if len(m.history) != 1 {
		t.Fatalf("Expected 1 exchange in history, got %d", len(m.history))
	}
}

// TestView verifies rendering for the initial, error, and session states.
func TestView(t *testing.T) {
	m := newTestModel(t)

	m.width = 0
	view := m.View()
	if view != "Initializing..." {
		t.Errorf("Expected view to be 'Initializing...', got '%s'", view)
	}

	m.width = 100
	m.height = 40
	m.err = answerErr{error: errors.New("test error")}
	view = m.View()
	if !strings.Contains(view, "Error") {
		t.Errorf("Expected view to contain 'Error', got '%s'", view)
	}
	m.err = nil

	view = m.View()
	if !strings.Contains(view, "Chainsight") {
		t.Errorf("Expected view to contain the application header, got '%s'", view)
	}
	if !strings.Contains(view, "Mode: template") {
		t.Errorf("Expected view to show template mode, got '%s'", view)
	}
}

// TestAskCmd runs one retrieval cycle end to end.
func TestAskCmd(t *testing.T) {
	m := newTestModel(t)

	msg := askCmd(context.Background(), m.system, "What is the safety stock policy?")()
	answer, ok := msg.(answerMsg)
	if !ok {
		t.Fatalf("Expected answerMsg, got %T", msg)
	}
	if !strings.Contains(answer.answer.Text, "20%") {
		t.Errorf("Expected answer to quote the inventory policy, got %q", answer.answer.Text)
	}
}
