package cli

import (
	"bufio"
	"fmt"
	"strings"
	"time"

	"github.com/example/frenchie/internal/learning"
	"github.com/example/frenchie/internal/quiz"
	"github.com/example/frenchie/pkg/models"
	"github.com/spf13/cobra"
)

var (
	quizContext     bool
	quizCollection  string
	quizLevel       string
	quizConjugation bool
	quizDifficulty  string
	quizCount       int
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Test yourself on the next session's cards",
	Long: `Asks a question for every card of the next session. Right answers count
as remembered, wrong ones as forgotten.

By default each question offers four translations to choose from; with
--context the French word has to be filled into its example sentence.
--collection or --level quiz a fixed set of words instead of the session.

--conjugation drills present tense verb forms instead. Those answers do not
touch the vocabulary schedule.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}
		if quizConjugation {
			return runConjugationQuiz(cmd)
		}

		svc := a.Service
		ctx, cancel := commandContext()
		progress := svc.LoadProgress(ctx)
		cancel()

		var items []models.VocabularyItem
		switch {
		case quizCollection != "":
			items = a.Catalog.Collection(quizCollection)
		case quizLevel != "":
			items = a.Catalog.ByLevel(models.Level(strings.ToUpper(quizLevel)))
		default:
			items = svc.LearningQueue(progress, svc.QueueSize())
		}
		if len(items) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "Nothing to quiz.")
			return nil
		}

		questionType := quiz.MultipleChoice
		if quizContext {
			questionType = quiz.ContextTest
		}
		questions := quiz.NewModule(a.Catalog, time.Now().UnixNano()).Create(items, questionType)

		out := cmd.OutOrStdout()
		in := bufio.NewScanner(cmd.InOrStdin())
		correct := 0
		for i, q := range questions {
			fmt.Fprintf(out, "\n%d/%d ", i+1, len(questions))
			if q.Type == quiz.ContextTest {
				fmt.Fprintf(out, "%s\n(%s)\n> ", q.ContextSentence, q.Item.ExampleTranslation)
			} else {
				fmt.Fprintf(out, "%s\n", q.Item.Term)
				for n, o := range q.Options {
					fmt.Fprintf(out, "  %d) %s\n", n+1, o)
				}
				fmt.Fprint(out, "> ")
			}
			if !in.Scan() {
				break
			}

			outcome := learning.Forgot
			if q.Check(in.Text()) {
				outcome = learning.Remembered
				correct++
				fmt.Fprintln(out, "Correct!")
			} else {
				fmt.Fprintf(out, "Wrong: %s - %s\n", q.Item.Term, q.Item.Translation)
			}
			ctx, cancel := commandContext()
			progress = svc.Review(ctx, progress, q.Item.ID, outcome)
			cancel()
		}

		fmt.Fprintf(out, "\nScore: %d/%d\n", correct, len(questions))
		return nil
	},
}

func runConjugationQuiz(cmd *cobra.Command) error {
	difficulty, err := quiz.ParseDifficulty(quizDifficulty)
	if err != nil {
		return err
	}
	table, err := quiz.DefaultVerbs()
	if err != nil {
		return err
	}
	questions := quiz.NewModule(nil, time.Now().UnixNano()).CreateConjugation(table, difficulty, quizCount)

	out := cmd.OutOrStdout()
	if len(questions) == 0 {
		fmt.Fprintln(out, "Nothing to quiz.")
		return nil
	}
	in := bufio.NewScanner(cmd.InOrStdin())
	correct := 0
	for i, q := range questions {
		irregular := ""
		if q.Verb.Irregular {
			irregular = ", irregular"
		}
		fmt.Fprintf(out, "\n%d/%d %s (%s%s)\n%s\n", i+1, len(questions), q.Verb.Infinitive, q.Verb.English, irregular, q.Sentence)
		for n, o := range q.Options {
			fmt.Fprintf(out, "  %d) %s\n", n+1, o)
		}
		fmt.Fprint(out, "> ")
		if !in.Scan() {
			break
		}
		if q.Check(in.Text()) {
			correct++
			fmt.Fprintf(out, "Correct! %s\n", q.FullSentence)
		} else {
			fmt.Fprintf(out, "Wrong: %s\n", q.FullSentence)
			if !q.Verb.Irregular {
				fmt.Fprintf(out, "Tip: %s\n", q.Tip())
			}
		}
	}

	fmt.Fprintf(out, "\nScore: %d/%d\n", correct, len(questions))
	return nil
}

var collectionsCmd = &cobra.Command{
	Use:   "collections",
	Short: "List word collections",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		names := a.Catalog.Collections()
		if len(names) == 0 {
			fmt.Fprintln(out, "No collections.")
			return nil
		}
		for _, name := range names {
			fmt.Fprintf(out, "%-24s %d words\n", name, len(a.Catalog.Collection(name)))
		}
		return nil
	},
}

func init() {
	quizCmd.Flags().BoolVar(&quizContext, "context", false, "Fill the word into its example sentence")
	quizCmd.Flags().StringVar(&quizCollection, "collection", "", "Quiz the words of one collection")
	quizCmd.Flags().StringVar(&quizLevel, "level", "", "Quiz the words of one level (A2, B1, B2)")
	quizCmd.Flags().BoolVar(&quizConjugation, "conjugation", false, "Drill present tense verb forms")
	quizCmd.Flags().StringVar(&quizDifficulty, "difficulty", string(quiz.Beginner), "Verb difficulty (beginner, intermediate, advanced)")
	quizCmd.Flags().IntVarP(&quizCount, "count", "n", 10, "Number of conjugation questions")
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(collectionsCmd)
}
