package p4

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func newMock() *MockRunner {
	return NewMockRunner(zerolog.Nop())
}

func TestMockEmbedsParameters(t *testing.T) {
	ctx := context.Background()
	cases := []struct {
		name string
		cmd  Command
		want []string
	}{
		{"status", Status("//depot/main/..."), []string{"Mock P4 Status", "//depot/main/..."}},
		{"status default path", Status(""), []string{"current directory"}},
		{"sync forced", Sync("//depot/main/...", true), []string{"//depot/main/...", "(forced)"}},
		{"sync plain", Sync("//depot/main/...", false), []string{"synced 15 files"}},
		{"edit", Edit([]string{"a.txt", "b.cpp"}), []string{"a.txt, b.cpp", "2 file(s) opened for edit"}},
		{"add", Add([]string{"new.go"}), []string{"new.go", "1 file(s) opened for add"}},
		{"submit all", Submit("fix crash", nil), []string{"fix crash", "All opened files"}},
		{"submit specific", Submit("fix crash", []string{"a.txt"}), []string{"Specific files: a.txt"}},
		{"revert", Revert([]string{"a.txt"}), []string{"a.txt", "1 file(s) reverted"}},
		{"opened", Opened("12345"), []string{"in changelist 12345"}},
		{"changes", Changes(3, "//depot/dev/..."), []string{"max: 3", "for path //depot/dev/...", "Change 12350"}},
		{"info", Info(), []string{"User name: testuser", "Server version:"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := newMock().Run(ctx, tc.cmd)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			for _, want := range tc.want {
				if !strings.Contains(out, want) {
					t.Fatalf("output missing %q:\n%s", want, out)
				}
			}
		})
	}
}

func TestMockIsIdempotent(t *testing.T) {
	ctx := context.Background()
	cmds := []Command{
		Status("//depot/main/..."),
		Sync("...", true),
		Edit([]string{"a.txt"}),
		Submit("same text", nil),
		Changes(10, ""),
		Info(),
	}
	for _, cmd := range cmds {
		first, err := newMock().Run(ctx, cmd)
		if err != nil {
			t.Fatalf("first run failed: %v", err)
		}
		second, err := newMock().Run(ctx, cmd)
		if err != nil {
			t.Fatalf("second run failed: %v", err)
		}
		if first != second {
			t.Fatalf("mock output not byte-identical for %s", cmd.Op)
		}
	}
}

func TestMockEditEmptyFileList(t *testing.T) {
	out, err := newMock().Run(context.Background(), Edit(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "0 file(s)") {
		t.Fatalf("expected 0 file(s) report, got:\n%s", out)
	}
}

func TestMockChangesZeroMax(t *testing.T) {
	out, err := newMock().Run(context.Background(), Changes(0, ""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "max: 0") {
		t.Fatalf("expected max: 0 in header, got:\n%s", out)
	}
	if strings.Contains(out, "Change 12350") {
		t.Fatalf("expected zero change entries, got:\n%s", out)
	}
}

func TestMockChangesCapsEntries(t *testing.T) {
	out, err := newMock().Run(context.Background(), Changes(50, ""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := strings.Count(out, "Change 123"); got != 5 {
		t.Fatalf("expected 5 change entries, got %d:\n%s", got, out)
	}
}

func TestMockCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := newMock().Run(ctx, Info()); err == nil {
		t.Fatal("expected error for canceled context")
	}
}
