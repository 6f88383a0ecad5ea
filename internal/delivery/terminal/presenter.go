package terminal

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"trivia-cli/internal/domain/entities"
)

// Presenter renders the game to a writer and reads selections from a reader.
// It carries no game state, so a single presenter serves a whole game.
type Presenter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPresenter creates a Presenter over the given streams.
func NewPresenter(in io.Reader, out io.Writer) *Presenter {
	return &Presenter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// ShowQuestion prints the prompt for one turn with options numbered from 1.
func (p *Presenter) ShowQuestion(playerName, prompt string, options []string) {
	fmt.Fprintf(p.out, "\n%s, it's your turn to answer:\n", playerName)
	fmt.Fprintln(p.out, prompt)
	for i, option := range options {
		fmt.Fprintf(p.out, "%d. %s\n", i+1, option)
	}
}

// ReadSelection reads one line of input. A final unterminated line still
// counts; only a read with nothing to return is an error.
func (p *Presenter) ReadSelection() (string, error) {
	fmt.Fprint(p.out, "Enter the number of your answer: ")

	line, err := p.in.ReadString('\n')
	line = strings.TrimSpace(line)
	if err != nil && line == "" {
		return "", err
	}

	return line, nil
}

// ShowCorrect confirms a correct answer.
func (p *Presenter) ShowCorrect() {
	fmt.Fprintln(p.out, "Correct! You earned a point.")
}

// ShowIncorrect reports a wrong answer.
func (p *Presenter) ShowIncorrect() {
	fmt.Fprintln(p.out, "Incorrect!")
}

// ShowInvalidInput asks the player to try the same question again.
func (p *Presenter) ShowInvalidInput() {
	fmt.Fprintln(p.out, "Invalid input, please try again.")
}

// ShowResults prints the final scoreboard in original player order, then the
// winner line.
func (p *Presenter) ShowResults(players []*entities.Player, winner *entities.Player) {
	fmt.Fprintln(p.out, "\nThe game is over! Here are the results:")
	for _, player := range players {
		fmt.Fprintf(p.out, "%s: %d points\n", player.Name, player.Score)
	}

	fmt.Fprintf(p.out, "\nThe winner is: %s with %d points!\n", winner.Name, winner.Score)
}
