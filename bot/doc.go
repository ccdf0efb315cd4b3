// Package bot is the Telegram command surface. It is thin glue: every
// command resolves to a catalog or renderer read, plus two short
// conversations (/feedback and /reply) that relay one text message to
// the feedback chat.
package bot
