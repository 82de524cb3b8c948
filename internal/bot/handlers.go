package bot

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/botstelegram2025/vendasdigitais/internal/dialog"
)

func (b *BotService) handleCommand(chatID int64, command string) {
	switch command {
	case "start":
		b.handleWelcome(chatID)
	default:
		msg := tgbotapi.NewMessage(chatID, "Comando desconhecido. Use /start.")
		msg.ReplyMarkup = MainMenu()
		b.botAPI.Send(msg)
	}
}

func (b *BotService) handleWelcome(chatID int64) {
	total, err := b.clientsRepo.CountByOwner(chatID)
	if err != nil {
		log.Printf("handleWelcome: %v", err)
		total = 0
	}

	welcomeText := "🤖 Bot de Gestão de Clientes\n\n" +
		fmt.Sprintf("📊 Total de clientes: %d\n\n", total) +
		"Use os botões abaixo para navegar:\n" +
		"➕ Adicionar Cliente - cadastrar novo cliente\n" +
		"👥 Listar Clientes - ver todos os clientes\n" +
		"📊 Relatório - resumo da carteira"

	msg := tgbotapi.NewMessage(chatID, welcomeText)
	msg.ReplyMarkup = MainMenu()
	b.botAPI.Send(msg)
}

// handleDialogReply bridges one inbound message into the dialog engine and
// renders whatever the engine answered.
func (b *BotService) handleDialogReply(chatID int64, text string) {
	reply, err := b.engine.HandleReply(chatID, text)

	switch {
	case errors.Is(err, dialog.ErrInvalidInput):
		warning := tgbotapi.NewMessage(chatID, "❌ Entrada inválida. Tente novamente.")
		b.botAPI.Send(warning)
		b.sendReply(chatID, reply)
	case errors.Is(err, dialog.ErrSaveFailed):
		msg := tgbotapi.NewMessage(chatID, "❌ Erro ao salvar o cadastro. Envie qualquer mensagem para tentar novamente.")
		msg.ReplyMarkup = CancelMenu()
		b.botAPI.Send(msg)
	case err != nil:
		log.Printf("handleDialogReply: %v", err)
		msg := tgbotapi.NewMessage(chatID, "❌ Ocorreu um erro. Tente novamente mais tarde.")
		msg.ReplyMarkup = MainMenu()
		b.botAPI.Send(msg)
	default:
		b.sendReply(chatID, reply)
	}
}

func (b *BotService) sendReply(chatID int64, reply dialog.Reply) {
	msg := tgbotapi.NewMessage(chatID, reply.Text)

	switch {
	case len(reply.Options) > 0:
		msg.ReplyMarkup = OptionsKeyboard(reply.Options)
	case b.engine.Active(chatID):
		msg.ReplyMarkup = CancelMenu()
	default:
		msg.ReplyMarkup = MainMenu()
	}

	if _, err := b.botAPI.Send(msg); err != nil {
		log.Printf("sendReply to %d: %v", chatID, err)
	}
}

func (b *BotService) handleCancel(chatID int64) {
	b.engine.Cancel(chatID)

	msg := tgbotapi.NewMessage(chatID, "❌ Cadastro cancelado.")
	msg.ReplyMarkup = MainMenu()
	b.botAPI.Send(msg)
}

func (b *BotService) handleListClients(chatID int64) {
	clients, err := b.clientsRepo.ListByOwner(chatID)
	if err != nil {
		log.Printf("handleListClients: %v", err)
		msg := tgbotapi.NewMessage(chatID, "❌ Erro ao buscar clientes. Tente novamente mais tarde.")
		msg.ReplyMarkup = MainMenu()
		b.botAPI.Send(msg)
		return
	}

	if len(clients) == 0 {
		msg := tgbotapi.NewMessage(chatID, "Nenhum cliente cadastrado ainda.")
		msg.ReplyMarkup = MainMenu()
		b.botAPI.Send(msg)
		return
	}

	now := time.Now()

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("👥 Clientes (%d):\n\n", len(clients)))

	for _, client := range clients {
		sb.WriteString(fmt.Sprintf("%s %s — %s — R$ %s — vence %s\n",
			statusEmoji(client.DueDate, now),
			client.Name,
			client.Package,
			client.Price,
			FormatDateBR(client.DueDate),
		))
	}

	msg := tgbotapi.NewMessage(chatID, sb.String())
	msg.ReplyMarkup = MainMenu()
	b.botAPI.Send(msg)
}

func (b *BotService) handleReport(chatID int64) {
	summary, err := b.clientsRepo.Summary(chatID)
	if err != nil {
		log.Printf("handleReport: %v", err)
		msg := tgbotapi.NewMessage(chatID, "❌ Erro ao gerar relatório. Tente novamente mais tarde.")
		msg.ReplyMarkup = MainMenu()
		b.botAPI.Send(msg)
		return
	}

	reportText := "📊 Relatório\n\n" +
		fmt.Sprintf("👥 Total de clientes: %d\n", summary.Total) +
		fmt.Sprintf("💰 Receita: R$ %.2f", summary.Revenue)

	msg := tgbotapi.NewMessage(chatID, reportText)
	msg.ReplyMarkup = MainMenu()
	b.botAPI.Send(msg)
}
