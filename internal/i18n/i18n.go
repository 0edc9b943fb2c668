// Package i18n holds the UI strings of the two supported locales.
package i18n

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Locale is a supported UI language.
type Locale string

const (
	English Locale = "en"
	Chinese Locale = "zh"
)

// Locales lists the supported locales, default first.
var Locales = []Locale{English, Chinese}

var matcher = language.NewMatcher([]language.Tag{language.English, language.Chinese})

// Valid reports whether l is supported.
func (l Locale) Valid() bool {
	return l == English || l == Chinese
}

// Toggle returns the other locale.
func (l Locale) Toggle() Locale {
	if l == Chinese {
		return English
	}
	return Chinese
}

// Detect picks a locale from a POSIX locale string such as zh_CN.UTF-8.
func Detect(posixLocale string) Locale {
	posixLocale, _, _ = strings.Cut(posixLocale, ".")
	posixLocale, _, _ = strings.Cut(posixLocale, "@")
	posixLocale = strings.ReplaceAll(posixLocale, "_", "-")
	if posixLocale == "" || posixLocale == "C" || posixLocale == "POSIX" {
		return English
	}
	_, index, confidence := matcher.Match(language.Make(posixLocale))
	if confidence == language.No {
		return English
	}
	return Locales[index]
}

// T returns the text for key in locale l, formatted with args.
// Unknown keys are returned as is.
func (l Locale) T(key string, args ...any) string {
	table, ok := tables[l]
	if !ok {
		table = tables[English]
	}
	text, ok := table[key]
	if !ok {
		text, ok = tables[English][key]
	}
	if !ok {
		return key
	}
	if len(args) == 0 {
		return text
	}
	return fmt.Sprintf(text, args...)
}

var tables = map[Locale]map[string]string{
	English: {
		"app.title":            "URL Reader",
		"nav.home":             "Home",
		"nav.chat":             "Chat",
		"button.parse":         "Parse",
		"button.send":          "Send",
		"button.newChat":       "New chat",
		"button.delete":        "Delete",
		"button.confirm":       "Confirm",
		"button.cancel":        "Cancel",
		"button.switchLang":    "中文",
		"input.url":            "Enter a web page URL",
		"chat.input":           "Ask something about the page",
		"chat.history":         "Conversations",
		"chat.noConversations": "No conversations yet",
		"chat.noMessages":      "No messages yet",
		"chat.deleteConfirm":   "Delete this conversation?",
		"chat.deleted":         "Conversation deleted",
		"chat.copied":          "Copied to clipboard",
		"chat.copyFailed":      "Clipboard unavailable: %s",
		"chat.error":           "Chat failed: %s",
		"chat.sending":         "Waiting for the reply...",
		"chat.model":           "Model",
		"parse.error":          "Parse failed: %s",
		"parse.loading":        "Reading the page...",
		"parse.result.title":   "Title",
		"parse.result.content": "Summary",
		"model.azure_openai":   "Azure OpenAI",
		"model.deepseek":       "DeepSeek",
		"help.home":            "enter parse • pgup/pgdown scroll • F2 chat • ctrl+l language • ctrl+c quit",
		"help.chat":            "tab focus • enter send • alt+enter newline • ctrl+n new chat • ctrl+t model • alt+w copy • F1 home • ctrl+l language",
		"help.list":            "↑/↓ move • enter open • d delete",
		"help.confirm":         "y confirm • n cancel",
		"repl.help":            "Commands: /new, /list, /open <id>, /delete <id>, /model, /url <url>, /quit",
		"repl.unknown":         "Unknown command: %s",
		"repl.needURL":         "Set a URL first with /url <url>",
	},
	Chinese: {
		"app.title":            "网页阅读器",
		"nav.home":             "首页",
		"nav.chat":             "对话",
		"button.parse":         "解析",
		"button.send":          "发送",
		"button.newChat":       "新建对话",
		"button.delete":        "删除",
		"button.confirm":       "确认",
		"button.cancel":        "取消",
		"button.switchLang":    "English",
		"input.url":            "请输入网页URL",
		"chat.input":           "请输入关于网页的问题",
		"chat.history":         "历史对话",
		"chat.noConversations": "暂无对话",
		"chat.noMessages":      "暂无消息",
		"chat.deleteConfirm":   "确定删除该对话吗？",
		"chat.deleted":         "对话已删除",
		"chat.copied":          "已复制到剪贴板",
		"chat.copyFailed":      "剪贴板不可用：%s",
		"chat.error":           "对话失败：%s",
		"chat.sending":         "正在等待回复...",
		"chat.model":           "模型",
		"parse.error":          "解析失败：%s",
		"parse.loading":        "正在读取网页...",
		"parse.result.title":   "标题",
		"parse.result.content": "摘要",
		"model.azure_openai":   "Azure OpenAI",
		"model.deepseek":       "DeepSeek",
		"help.home":            "enter 解析 • pgup/pgdown 滚动 • F2 对话 • ctrl+l 语言 • ctrl+c 退出",
		"help.chat":            "tab 切换焦点 • enter 发送 • alt+enter 换行 • ctrl+n 新建对话 • ctrl+t 模型 • alt+w 复制 • F1 首页 • ctrl+l 语言",
		"help.list":            "↑/↓ 移动 • enter 打开 • d 删除",
		"help.confirm":         "y 确认 • n 取消",
		"repl.help":            "命令：/new, /list, /open <id>, /delete <id>, /model, /url <url>, /quit",
		"repl.unknown":         "未知命令：%s",
		"repl.needURL":         "请先使用 /url <url> 设置网页",
	},
}
