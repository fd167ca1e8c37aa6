package styles

var (
	IconPass = "✔"
	IconWarn = "●"
	IconFail = "✘"
)
