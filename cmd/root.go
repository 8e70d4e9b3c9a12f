/* cmd/root.go */

package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/CodeMonkeyCybersecurity/readhuman/pkg/interaction"
	cerr "github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd runs a small interactive wizard that exercises the library:
// a free-form parsed field, a numeric field, and a choice field.
var RootCmd = &cobra.Command{
	Use:   "readhuman",
	Short: "Demo wizard for the readhuman prompting library",
	Long: `readhuman prompts a human for input on the command line and validates or
parses each answer, asking again until the answer is acceptable. This demo
collects a person's name, age, and gender.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		human := interaction.Default()

		name, err := interaction.ReadCustomNonEmpty(ctx, human, "What is your name", ParseName)
		if err != nil {
			return err
		}

		age, err := human.ReadInt(ctx, "What is your age")
		if err != nil {
			return err
		}

		gender, err := human.ReadChoice(ctx, "What is your gender?",
			[]string{"male", "female", "other"}, interaction.NoDefault)
		if err != nil {
			return err
		}

		person := Person{Name: name, Age: age, Gender: Gender(gender)}
		zap.L().Info("Wizard complete",
			zap.String("given", person.Name.Given),
			zap.String("family", person.Name.Family),
			zap.Int("age", person.Age),
			zap.String("gender", person.Gender.String()),
		)

		// result on stdout; prompts went to stderr
		fmt.Printf("%s %s, %d, %s\n", person.Name.Given, person.Name.Family, person.Age, person.Gender)
		return nil
	},
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		zap.L().Error("Command failed", zap.Error(err))
		os.Exit(1)
	}
}

type Gender int

const (
	GenderMale Gender = iota
	GenderFemale
	GenderOther
)

func (g Gender) String() string {
	switch g {
	case GenderMale:
		return "male"
	case GenderFemale:
		return "female"
	case GenderOther:
		return "other"
	}
	return "unknown"
}

// Name is a given name plus a family name.
type Name struct {
	Given  string
	Family string
}

type Person struct {
	Name   Name
	Age    int
	Gender Gender
}

// ParseName splits "Given Family..." on the first space. Locales where
// the family name comes first need their own parser.
func ParseName(input string) (Name, error) {
	given, family, ok := strings.Cut(strings.TrimSpace(input), " ")
	family = strings.TrimSpace(family)
	if !ok || family == "" {
		return Name{}, cerr.New("expected a given name and a family name")
	}
	return Name{Given: given, Family: family}, nil
}
