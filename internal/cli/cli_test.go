package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/example/frenchie/internal/catalog"
	"github.com/example/frenchie/internal/config"
	"github.com/example/frenchie/internal/learning"
	"github.com/example/frenchie/pkg/models"
)

// useTestApp installs an in-memory App for the duration of the test
func useTestApp(t *testing.T) *App {
	t.Helper()
	c, err := catalog.New([]models.VocabularyItem{
		{ID: "bonjour", Term: "bonjour", Translation: "hello", Level: models.LevelA2},
		{ID: "merci", Term: "merci", Translation: "thank you", Level: models.LevelA2, Collection: "Politesse"},
		{ID: "maison", Term: "la maison", Translation: "the house", Level: models.LevelB1,
			ExampleTerm: "La maison est grande.", ExampleTranslation: "The house is big."},
	})
	if err != nil {
		t.Fatal(err)
	}
	clock := time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC)
	a := NewMemoryApp(config.Default(), c, learning.Options{
		QueueSize: 3,
		DailyGoal: 2,
		Seed:      1,
		Now:       func() time.Time { return clock },
	})

	orig := app
	app = a
	t.Cleanup(func() {
		a.Close()
		app = orig
	})
	return a
}

func run(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(input))
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetIn(nil)
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestCommandsRegistered(t *testing.T) {
	want := []string{"stats", "queue", "review", "forgotten", "familiar", "study", "quiz", "collections", "import", "reset", "serve", "version"}
	registered := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		registered[cmd.Name()] = true
	}
	for _, name := range want {
		if !registered[name] {
			t.Errorf("command %q not registered", name)
		}
	}
}

func TestVersion(t *testing.T) {
	SetVersionInfo("1.2.3", "abc", "today")
	defer SetVersionInfo("dev", "none", "unknown")
	out, err := run(t, "", "version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "frenchie 1.2.3") {
		t.Errorf("output = %q", out)
	}
}

func TestStatsOnFreshLearner(t *testing.T) {
	useTestApp(t)
	out, err := run(t, "", "stats")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"Words:      3", "Due now:    3", "Streak:     0"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestReviewAndLists(t *testing.T) {
	useTestApp(t)

	if _, err := run(t, "", "review", "merci", "forgot"); err != nil {
		t.Fatalf("review forgot: %v", err)
	}
	if _, err := run(t, "", "review", "bonjour", "familiar"); err != nil {
		t.Fatalf("review familiar: %v", err)
	}

	out, err := run(t, "", "forgotten")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "1x") || !strings.Contains(out, "merci") {
		t.Errorf("forgotten output = %q", out)
	}

	out, err = run(t, "", "familiar")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "bonjour") {
		t.Errorf("familiar output = %q", out)
	}

	out, err = run(t, "", "queue")
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out, "bonjour") || !strings.Contains(out, "maison") {
		t.Errorf("queue output = %q", out)
	}
}

func TestReviewRejectsBadInput(t *testing.T) {
	useTestApp(t)
	if _, err := run(t, "", "review", "nope", "forgot"); err == nil {
		t.Error("unknown card accepted")
	}
	if _, err := run(t, "", "review", "merci", "sometimes"); err == nil {
		t.Error("unknown outcome accepted")
	}
}

func TestStudy(t *testing.T) {
	a := useTestApp(t)
	out, err := run(t, "r\nx\nv\nq\n", "study")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Please answer") {
		t.Errorf("bad answer not reported:\n%s", out)
	}
	if !strings.Contains(out, "Daily goal reached! Streak: 1") {
		t.Errorf("goal not reached:\n%s", out)
	}

	progress := a.Service.LoadProgress(context.Background())
	if len(progress) != 2 {
		t.Errorf("progress has %d entries, want 2", len(progress))
	}
}

func TestResetNeedsConfirmation(t *testing.T) {
	a := useTestApp(t)
	ctx := context.Background()
	a.Service.MarkRemembered(ctx, models.ProgressMap{}, "merci")

	if _, err := run(t, "", "reset"); err == nil {
		t.Fatal("reset without --yes succeeded")
	}
	if _, err := run(t, "", "reset", "--yes"); err != nil {
		t.Fatalf("reset --yes: %v", err)
	}
	resetConfirm = false

	if p := a.Service.LoadProgress(ctx); len(p) != 0 {
		t.Errorf("progress after reset = %v", p)
	}
}

func TestImportCSV(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "words.csv")
	csv := "id,french,english\nf-1,le pain,bread\nf-2,le vin,wine\n"
	if err := os.WriteFile(src, []byte(csv), 0644); err != nil {
		t.Fatal(err)
	}
	dst := filepath.Join(dir, "catalog.yaml")

	if _, err := run(t, "", "import", src, "-o", dst); err != nil {
		t.Fatalf("import: %v", err)
	}
	importOutput = ""

	c, err := catalog.LoadYAML(dst)
	if err != nil {
		t.Fatalf("LoadYAML: %v", err)
	}
	if c.Len() != 2 || !c.Contains("f-2") {
		t.Errorf("imported catalog has %d items", c.Len())
	}
}

func TestImportRejectsOtherFiles(t *testing.T) {
	if _, err := run(t, "", "import", "words.txt"); err == nil {
		t.Error("import of .txt succeeded")
	}
}

func TestQuizCollection(t *testing.T) {
	a := useTestApp(t)
	defer func() { quizCollection = "" }()

	out, err := run(t, "thank you\n", "quiz", "--collection", "politesse")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Score: 1/1") {
		t.Errorf("output = %q", out)
	}
	state := a.Service.LoadProgress(context.Background())["merci"]
	if state.Repetition != 1 {
		t.Errorf("merci state = %+v", state)
	}
}

func TestQuizContextWrongAnswer(t *testing.T) {
	a := useTestApp(t)
	defer func() { quizContext, quizLevel = false, "" }()

	out, err := run(t, "le chat\n", "quiz", "--context", "--level", "b1")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "_______ est grande.") || !strings.Contains(out, "Score: 0/1") {
		t.Errorf("output = %q", out)
	}
	if got := a.Service.LoadProgress(context.Background())["maison"].ForgotCount; got != 1 {
		t.Errorf("ForgotCount = %d", got)
	}
}

func TestQuizConjugation(t *testing.T) {
	a := useTestApp(t)
	defer func() { quizConjugation, quizDifficulty, quizCount = false, "beginner", 10 }()

	out, err := run(t, "1\n1\n", "quiz", "--conjugation", "--difficulty", "advanced", "-n", "2")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "2/2 ") || !strings.Contains(out, "/2\n") || !strings.Contains(out, "_______") {
		t.Errorf("output = %q", out)
	}
	if progress := a.Service.LoadProgress(context.Background()); len(progress) != 0 {
		t.Errorf("conjugation quiz touched %d vocabulary entries", len(progress))
	}
}

func TestQuizConjugationUnknownDifficulty(t *testing.T) {
	useTestApp(t)
	defer func() { quizConjugation, quizDifficulty = false, "beginner" }()

	if _, err := run(t, "", "quiz", "--conjugation", "--difficulty", "expert"); err == nil {
		t.Error("unknown difficulty accepted")
	}
}

func TestCollections(t *testing.T) {
	useTestApp(t)
	out, err := run(t, "", "collections")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Politesse") || !strings.Contains(out, "1 words") {
		t.Errorf("output = %q", out)
	}
}
