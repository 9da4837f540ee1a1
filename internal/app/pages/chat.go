package pages

import (
	"context"
	"strconv"

	"github.com/a-h/templ"

	"github.com/FACorreiaa/tamilnadu-explorer/internal/app/components"
	"github.com/FACorreiaa/tamilnadu-explorer/internal/app/domain/markdown"
	"github.com/FACorreiaa/tamilnadu-explorer/internal/app/models"
)

const ChatLogID = "chat-log"

func ChatPage(history []models.ChatMessage, maxImages int) templ.Component {
	return components.Render(func(ctx context.Context, w *components.Writer) {
		w.Open("section", templ.Attributes{"class": "flex h-[70vh] flex-col rounded-2xl bg-white shadow-md ring-1 ring-orange-100"})
		w.Open("header", templ.Attributes{"class": "rounded-t-2xl bg-orange-600 px-6 py-4 text-white"})
		w.Element("h1", templ.Attributes{"class": "font-bold"}, "Tamil Nadu Travel Assistant")
		w.Close("header")

		w.Open("div", templ.Attributes{"id": ChatLogID, "class": "flex-1 space-y-4 overflow-y-auto p-4", "aria-live": "polite"})
		for _, m := range history {
			w.Component(ctx, ChatBubble(m))
		}
		w.Close("div")

		w.Open("form", templ.Attributes{
			"id":                   "chat-form",
			"class":                "flex flex-col gap-2 border-t border-gray-100 p-4",
			"method":               "post",
			"action":               "/chat/messages",
			"enctype":              "multipart/form-data",
			"hx-post":              "/chat/messages",
			"hx-target":            "#" + ChatLogID,
			"hx-swap":              "beforeend",
			"hx-encoding":          "multipart/form-data",
			"hx-on::after-request": "if(event.detail.successful) this.reset()",
		})
		w.Open("div", templ.Attributes{"class": "flex gap-2"})
		w.Open("input", templ.Attributes{
			"type": "text", "name": "message", "autocomplete": "off",
			"placeholder": "Ask about places, food, culture...",
			"class":       "flex-1 rounded-lg border border-gray-200 px-4 py-2 focus:border-orange-500 focus:outline-none",
		})
		w.Component(ctx, components.Button(components.ButtonProps{Label: "Send", Type: "submit"}))
		w.Close("div")
		w.Open("input", templ.Attributes{
			"type": "file", "name": "images", "accept": "image/*", "multiple": true,
			"data-max-files": strconv.Itoa(maxImages),
			"class":          "text-xs text-gray-500",
		})
		w.Close("form")
		w.Close("section")
	})
}

// ChatBubble renders one message. Assistant text goes through the inline
// formatter; user text is shown as typed.
func ChatBubble(m models.ChatMessage) templ.Component {
	return components.Render(func(_ context.Context, w *components.Writer) {
		align, bubble := "flex justify-start", "max-w-[80%] rounded-2xl rounded-bl-sm bg-gray-100 px-4 py-2 text-gray-800"
		if m.Role == models.RoleUser {
			align, bubble = "flex justify-end", "max-w-[80%] rounded-2xl rounded-br-sm bg-orange-600 px-4 py-2 text-white"
		}

		w.Open("div", templ.Attributes{"class": "chat-message " + align, "data-role": string(m.Role)})
		w.Open("div", templ.Attributes{"class": bubble})
		if len(m.Images) > 0 {
			w.Open("div", templ.Attributes{"class": "mb-2 flex flex-wrap gap-2"})
			for _, src := range m.Images {
				w.Open("img", templ.Attributes{"src": templ.SafeURL(src), "alt": "attached image", "class": "h-20 w-20 rounded-lg object-cover"})
			}
			w.Close("div")
		}
		if m.Role == models.RoleAssistant {
			w.Raw(markdown.RenderInline(m.Content))
		} else {
			w.Text(m.Content)
		}
		w.Close("div")
		w.Close("div")
	})
}

// ChatExchange is appended to the log after each question.
func ChatExchange(question, answer models.ChatMessage) templ.Component {
	return components.Render(func(ctx context.Context, w *components.Writer) {
		w.Component(ctx, ChatBubble(question))
		w.Component(ctx, ChatBubble(answer))
	})
}
