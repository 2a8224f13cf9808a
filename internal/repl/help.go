package repl

// Topic is a named block of help text.
type Topic struct {
	Name string
	Text string
}

// Topics lists help text in display order.
var Topics = []Topic{
	{
		Name: "help",
		Text: "help <arg>\n" +
			"\thelp : prints this output\n" +
			"\thelp add : prints help for the `add` command\n" +
			"\thelp edit : prints help for the `edit` command\n" +
			"\thelp delete : prints help for the `delete` command\n" +
			"\tquit : saves and exits",
	},
	{
		Name: "add",
		Text: "add <arg>\n" +
			"\tadd : prints the help page for this command\n" +
			"\t<arg> : the description for the todo",
	},
	{
		Name: "edit",
		Text: "edit <arg> <flags>\n" +
			"\tedit : prints the help page for this command\n" +
			"\t<arg> : the todo index\n" +
			"\t<flags>\n" +
			"\t\t-t : the todo text\n" +
			"\t\t-s : the todo state\n" +
			"\t\t(1||NORMAL)\n" +
			"\t\t(2||INPROG)\n" +
			"\t\t(3||FINISHED)\n" +
			"\t\t(4||CLOSED)",
	},
	{
		Name: "delete",
		Text: "delete <arg>\n" +
			"\tdelete : prints the help page for this command\n" +
			"\t<arg> : the todo index",
	},
}

// lookupTopic returns the help topic for a command. Only command topics can
// be selected; anything else yields false.
func lookupTopic(name string) (Topic, bool) {
	if name == "help" {
		return Topic{}, false
	}
	for _, t := range Topics {
		if t.Name == name {
			return t, true
		}
	}
	return Topic{}, false
}
