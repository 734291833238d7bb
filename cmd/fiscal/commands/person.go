package commands

import (
	"github.com/spf13/cobra"
	"github.com/teranos/fiscal/fiscal"
)

// personFlags collects a Person from flags, falling back to positional
// arguments in the order given, paternal, maternal, birth date.
type personFlags struct {
	given    string
	paternal string
	maternal string
	date     string
	city     string
	state    string
}

func (f *personFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVarP(&f.given, "given", "n", "", "Given name(s)")
	fl.StringVarP(&f.paternal, "paternal", "p", "", "Paternal surname")
	fl.StringVarP(&f.maternal, "maternal", "m", "", "Maternal surname (omit if none)")
	fl.StringVarP(&f.date, "date", "d", "", "Birth date as DD-MM-YYYY (default today)")
	fl.StringVar(&f.city, "city", "", "City of birth")
	fl.StringVar(&f.state, "state", "", "State of birth")
}

func (f *personFlags) person(args []string) fiscal.Person {
	pick := func(flag string, i int) string {
		if flag == "" && i < len(args) {
			return args[i]
		}
		return flag
	}
	return fiscal.Person{
		GivenName:       pick(f.given, 0),
		PaternalSurname: pick(f.paternal, 1),
		MaternalSurname: pick(f.maternal, 2),
		BirthDate:       fiscal.DateString(pick(f.date, 3)),
		City:            f.city,
		State:           f.state,
	}
}
