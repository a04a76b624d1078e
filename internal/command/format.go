package command

import "strings"

// EmbedColor is the side bar color of every embed the bot sends.
const EmbedColor = 0xb01e66

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"*", `\*`,
	"_", `\_`,
	"~", `\~`,
	"`", "\\`",
	"|", `\|`,
)

// A zero-width space after the trigger stops Discord from parsing a mention.
var mentionBreaker = strings.NewReplacer(
	"@everyone", "@\u200beveryone",
	"@here", "@\u200bhere",
	"<@", "<@\u200b",
	"<#", "<#\u200b",
)

// EscapeMarkdown escapes Discord markdown control characters.
func EscapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}

// NeutralizeMentions breaks user, role, channel and mass mentions.
func NeutralizeMentions(s string) string {
	return mentionBreaker.Replace(s)
}

// BoldSafe renders untrusted text in bold so it can neither end the bold
// span early nor ping anyone.
func BoldSafe(s string) string {
	return "**" + EscapeMarkdown(NeutralizeMentions(s)) + "**"
}
