package telegram

const usageMessage = "Hi! I'm still under development. Create a task like this:\n" +
	"```\n" +
	"/task [\\n] space.[folder.]list\n" +
	"title\n" +
	"description\n" +
	"fields\n" +
	"```\n" +
	"note: `[]` around a term means it is optional in the command syntax."
