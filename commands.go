package tabbar

// Command is a side effect an input handler asks the Application to carry
// out once the event has been handled. A nil Command asks for nothing.
type Command interface {
	command()
}

// Batch combines cmds into a single command. Nil commands are dropped and
// nested batches are flattened. It returns nil for an empty result and the
// only command if there is just one.
func Batch(cmds ...Command) Command {
	var flat batch
	for _, cmd := range cmds {
		switch c := cmd.(type) {
		case nil:
		case batch:
			flat = append(flat, c...)
		default:
			flat = append(flat, c)
		}
	}
	switch len(flat) {
	case 0:
		return nil
	case 1:
		return flat[0]
	}
	return flat
}

type batch []Command

// RedrawCommand redraws the screen after the event.
type RedrawCommand struct{}

// QuitCommand stops the application.
type QuitCommand struct{}

// FocusCommand moves the keyboard focus to Target.
type FocusCommand struct {
	Target Primitive
}

// TitleCommand sets the terminal window title.
type TitleCommand string

func (batch) command()         {}
func (RedrawCommand) command() {}
func (QuitCommand) command()   {}
func (FocusCommand) command()  {}
func (TitleCommand) command()  {}
