package bot

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/worldwidesim/esim-store/internal/dto"
	"github.com/worldwidesim/esim-store/internal/service"
)

const startText = "Привет! 👋 WorldWideSim — интернет в любой точке мира за пару минут.\n\nВыберите, что вас интересует:"

func mainMenuView() dto.View {
	return dto.View{
		Text: startText,
		Keyboard: [][]dto.Button{
			{
				{Text: "💳 Купить eSIM", Data: dto.CallbackBuy},
				{Text: "👤 Профиль", Data: dto.CallbackProfile},
			},
		},
	}
}

func (b *Bot) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	userID := cb.From.ID
	data := cb.Data

	switch data {
	case dto.CallbackNavDisabled, dto.CallbackPageInfo, dto.CallbackSeparator:
		// Inert controls: acknowledge only.
		b.render(cb, dto.Reply{})
		return
	case dto.CallbackMainMenu:
		b.render(cb, dto.ViewReply(mainMenuView()))
		return
	case dto.CallbackBuy:
		b.render(cb, b.purchases.StartPurchase(userID))
		return
	case dto.CallbackProfile:
		b.render(cb, b.purchases.Profile(ctx, userID))
		return
	case dto.CallbackCancel:
		b.render(cb, b.purchases.Cancel(userID))
		return
	case dto.CallbackConfirm, dto.CallbackPaySBP:
		// Placing the order takes a moment; show progress first.
		b.edit(cb.Message.Chat.ID, cb.Message.MessageID, service.ProcessingPaymentView())
		b.render(cb, b.purchases.ConfirmPayment(ctx, userID))
		return
	case dto.CallbackShowDetails:
		b.edit(cb.Message.Chat.ID, cb.Message.MessageID, service.GettingDetailsView())
		b.render(cb, b.purchases.ShowDetails(ctx, userID))
		return
	}

	// Prefix-routed payloads. Package pagination must be checked before
	// single packages and country pagination: the grammars overlap.
	if _, page, ok := dto.ParsePackagePageCallback(data); ok {
		b.render(cb, b.purchases.PackagesPage(ctx, userID, page))
		return
	}
	if regionKey, ok := dto.ParseRegionCallback(data); ok {
		b.render(cb, b.purchases.SelectRegion(userID, regionKey))
		return
	}
	if regionKey, page, ok := dto.ParseCountryPageCallback(data); ok {
		b.render(cb, b.purchases.CountryPage(userID, regionKey, page))
		return
	}
	if name, ok := dto.ParseCountryCallback(data); ok {
		b.edit(cb.Message.Chat.ID, cb.Message.MessageID, service.LoadingPackagesView(name))
		b.render(cb, b.purchases.SelectCountry(ctx, userID, name))
		return
	}
	if index, ok := dto.ParsePackageCallback(data); ok {
		b.render(cb, b.purchases.SelectPackage(ctx, userID, index))
		return
	}
	if index, days, ok := dto.ParseDaysCallback(data); ok {
		b.render(cb, b.purchases.SelectDays(ctx, userID, index, days))
		return
	}
	if dto.IsBackToListCallback(data) {
		b.render(cb, b.purchases.BackToPackages(ctx, userID))
		return
	}
	if index, ok := dto.ParseProfileEsimCallback(data); ok {
		b.render(cb, b.purchases.ProfileEsim(ctx, userID, index))
		return
	}

	b.render(cb, dto.Reply{})
}
