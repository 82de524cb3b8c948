package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/botstelegram2025/vendasdigitais/internal/db"
	"github.com/botstelegram2025/vendasdigitais/internal/dialog"
)

type BotService struct {
	botAPI      *tgbotapi.BotAPI
	engine      *dialog.Engine
	clientsRepo *db.ClientRepository
	adminChatID int64
}

func New(
	botAPI *tgbotapi.BotAPI,
	engine *dialog.Engine,
	clientsRepo *db.ClientRepository,
	adminChatID int64,
) *BotService {
	return &BotService{
		botAPI:      botAPI,
		engine:      engine,
		clientsRepo: clientsRepo,
		adminChatID: adminChatID,
	}
}

func (b *BotService) Start() {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.botAPI.GetUpdatesChan(u)

	for update := range updates {
		if update.Message == nil {
			continue
		}

		chatID := update.Message.Chat.ID
		text := update.Message.Text

		// Bot de uso exclusivo do administrador
		if chatID != b.adminChatID {
			msg := tgbotapi.NewMessage(chatID, "❌ Acesso negado. Apenas o administrador pode usar este bot.")
			b.botAPI.Send(msg)
			continue
		}

		if update.Message.IsCommand() {
			b.handleCommand(chatID, update.Message.Command())
			continue
		}

		if b.engine.Active(chatID) {
			if text == ButtonCancel {
				b.handleCancel(chatID)
				continue
			}

			b.handleDialogReply(chatID, text)
			continue
		}

		switch text {
		case ButtonAddClient:
			b.handleDialogReply(chatID, text)
		case ButtonListClients:
			b.handleListClients(chatID)
		case ButtonReport:
			b.handleReport(chatID)
		default:
			b.handleWelcome(chatID)
		}
	}
}
