package interpreter

// assign handles `variable <name> isequal to <value>`. tokens includes the
// leading keyword.
func (in *Interpreter) assign(tokens []string) {
	if len(tokens) != 5 || tokens[0] != keywordVariable || tokens[2] != "isequal" || tokens[3] != "to" {
		in.out.diagnostic(msgInvalidAssignment)
		return
	}
	name := tokens[1]
	val, ok := ParseNumber(tokens[4])
	if !ok {
		in.out.diagnostic(msgInvalidValue)
		return
	}
	in.env.set(name, val)
	in.out.assigned(name, val)
}
