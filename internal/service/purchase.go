package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"

	"github.com/worldwidesim/esim-store/internal/catalog"
	"github.com/worldwidesim/esim-store/internal/dto"
	"github.com/worldwidesim/esim-store/internal/model"
	"github.com/worldwidesim/esim-store/internal/repository"
)

const (
	orderPollAttempts = 5
	orderPollInterval = 2 * time.Second
)

var errOrderNotReady = errors.New("order not ready")

// PurchaseService drives the region → country → package → days →
// confirmation → payment → provisioning flow. Each method handles one
// user interaction and returns the screen (or toast) to show; session
// state lives in the injected store, keyed by user identity.
type PurchaseService struct {
	catalog  *CatalogService
	rates    *RateService
	client   ProvisioningClient
	sessions *repository.SessionStore
	orders   repository.OrderStore

	pollInterval time.Duration
}

func NewPurchaseService(
	cat *CatalogService,
	rates *RateService,
	client ProvisioningClient,
	sessions *repository.SessionStore,
	orders repository.OrderStore,
) *PurchaseService {
	return &PurchaseService{
		catalog:      cat,
		rates:        rates,
		client:       client,
		sessions:     sessions,
		orders:       orders,
		pollInterval: orderPollInterval,
	}
}

// StartPurchase opens the flow: any prior session is discarded and the
// region menu rendered.
func (s *PurchaseService) StartPurchase(userID int64) dto.Reply {
	s.sessions.Clear(userID)
	return dto.ViewReply(regionMenuView())
}

// SelectRegion renders the chosen region's country list. An unknown
// region key is a user-input error: acknowledged, nothing changes.
func (s *PurchaseService) SelectRegion(userID int64, regionKey string) dto.Reply {
	region, ok := catalog.Regions[regionKey]
	if !ok {
		log.Warn().Int64("user_id", userID).Str("region", regionKey).Msg("unknown region")
		return dto.ToastReply(toastUnknownRegion)
	}

	s.sessions.Set(userID, model.SelectingCountry{RegionKey: regionKey})
	return dto.ViewReply(countriesView(region, 1))
}

// CountryPage re-renders the country list at another page. Pure
// presentation; session state is untouched.
func (s *PurchaseService) CountryPage(userID int64, regionKey string, page int) dto.Reply {
	region, ok := catalog.Regions[regionKey]
	if !ok {
		return dto.ToastReply(toastUnknownRegion)
	}
	return dto.ViewReply(countriesView(region, page))
}

// SelectCountry resolves a country (button press or typed name), fetches
// its offers and moves to package selection. Unknown names and empty
// offer lists leave the session as it was.
func (s *PurchaseService) SelectCountry(ctx context.Context, userID int64, name string) dto.Reply {
	country, ok := catalog.LookupCountry(name)
	if !ok {
		log.Info().Int64("user_id", userID).Str("country", name).Msg("country not found")
		view := regionMenuView()
		view.Text = textNothingFound
		return dto.ViewReply(view)
	}

	offers := s.catalog.ListOffers(ctx, country.Code)
	if len(offers) == 0 {
		return dto.ViewReply(mainMenuTextView(fmt.Sprintf(textNoPackages, country.Name)))
	}

	s.sessions.Set(userID, model.SelectingPackage{Country: country, Offers: offers})
	return dto.ViewReply(packagesView(offers, country, 1, s.rates.Rate(ctx)))
}

// SelectCountryText is the free-text entry path: the typed name is
// normalized to capitalized form before lookup.
func (s *PurchaseService) SelectCountryText(ctx context.Context, userID int64, text string) dto.Reply {
	return s.SelectCountry(ctx, userID, capitalize(strings.TrimSpace(text)))
}

// PackagesPage re-renders the stored offer list at another page.
func (s *PurchaseService) PackagesPage(ctx context.Context, userID int64, page int) dto.Reply {
	country, offers, ok := s.sessionOffers(userID)
	if !ok {
		return dto.ToastReply(toastPackagesNotFound)
	}
	return dto.ViewReply(packagesView(offers, country, page, s.rates.Rate(ctx)))
}

// SelectPackage validates the chosen index and either asks for a day
// count (daily offers) or renders the confirmation directly.
func (s *PurchaseService) SelectPackage(ctx context.Context, userID int64, index int) dto.Reply {
	country, offers, ok := s.sessionOffers(userID)
	if !ok {
		return dto.ToastReply(toastBadPackage)
	}

	if index < 0 || index >= len(offers) {
		// Recoverable: the session keeps its offers for another try.
		log.Warn().Int64("user_id", userID).Int("index", index).Msg("package index out of range")
		return dto.ViewReply(mainMenuTextView(textPackageNotFound))
	}

	offer := offers[index]
	if IsDaily(offer) {
		s.sessions.Set(userID, model.SelectingDays{Country: country, Offers: offers, Index: index})
		return dto.ViewReply(daysView(country.Name, index))
	}

	s.sessions.Set(userID, model.ConfirmingPurchase{Country: country, Offers: offers, Index: index})
	return dto.ViewReply(confirmView(country, PriceOffer(offer, s.rates.Rate(ctx), 0), offer.Operators))
}

// SelectDays stores the chosen day count and renders the confirmation.
func (s *PurchaseService) SelectDays(ctx context.Context, userID int64, index, days int) dto.Reply {
	state, _ := s.sessions.Get(userID)
	selecting, ok := state.(model.SelectingDays)
	if !ok || !validDays(days) || index != selecting.Index {
		return dto.ToastReply(toastBadDays)
	}

	offer := selecting.Offers[selecting.Index]
	s.sessions.Set(userID, model.ConfirmingPurchase{
		Country: selecting.Country,
		Offers:  selecting.Offers,
		Index:   selecting.Index,
		Days:    days,
	})
	return dto.ViewReply(confirmView(selecting.Country, PriceOffer(offer, s.rates.Rate(ctx), days), offer.Operators))
}

// BackToPackages re-renders the stored offer list at page 1. When the
// session has expired it falls back to the region menu instead of
// erroring.
func (s *PurchaseService) BackToPackages(ctx context.Context, userID int64) dto.Reply {
	country, offers, ok := s.sessionOffers(userID)
	if !ok {
		return dto.ViewReply(regionMenuView())
	}
	s.sessions.Set(userID, model.SelectingPackage{Country: country, Offers: offers})
	return dto.ViewReply(packagesView(offers, country, 1, s.rates.Rate(ctx)))
}

// ConfirmPayment places the order. On failure the confirmation state is
// kept so the user can retry; on success the order is persisted and the
// flow moves to payment processing.
func (s *PurchaseService) ConfirmPayment(ctx context.Context, userID int64) dto.Reply {
	state, _ := s.sessions.Get(userID)
	confirming, ok := state.(model.ConfirmingPurchase)
	if !ok {
		return dto.ViewReply(mainMenuTextView(textPackageNotFound))
	}

	offer := confirming.Offers[confirming.Index]

	totalPrice := offer.Price
	periodNum := 0
	if confirming.Days > 0 && IsDaily(offer) {
		totalPrice = offer.Price * int64(confirming.Days)
		periodNum = confirming.Days
	}

	orderNo, err := s.client.OrderProfile(ctx, offer.PackageCode, totalPrice, 1, periodNum)
	if err != nil || orderNo == "" {
		log.Error().Err(err).Int64("user_id", userID).Str("package_code", offer.PackageCode).Msg("order placement failed")
		return dto.ViewReply(mainMenuTextView(textPaymentError))
	}

	order := &model.Order{
		UserID:      userID,
		OrderNo:     orderNo,
		Country:     confirming.Country.Name,
		PackageName: offer.Name,
	}
	if err := s.orders.Append(ctx, order); err != nil {
		// The order is already placed upstream; losing the record is
		// logged, not surfaced.
		log.Error().Err(err).Str("order_no", orderNo).Msg("order record not persisted")
	}

	s.sessions.Set(userID, model.PaymentProcessing{
		Country: confirming.Country,
		Offer:   offer,
		Days:    confirming.Days,
		OrderNo: orderNo,
	})
	return dto.ViewReply(paymentDoneView())
}

// ShowDetails polls the provisioning API until the ordered profile
// appears, bounded at five attempts two seconds apart. The session is
// cleared either way; a not-ready order stays reachable from the profile
// view through the order store.
func (s *PurchaseService) ShowDetails(ctx context.Context, userID int64) dto.Reply {
	state, _ := s.sessions.Get(userID)
	processing, ok := state.(model.PaymentProcessing)
	if !ok {
		s.sessions.Clear(userID)
		return dto.ViewReply(mainMenuTextView(textPackageNotFound))
	}

	profiles, err := s.pollOrder(ctx, processing.OrderNo)
	s.sessions.Clear(userID)

	if err != nil || len(profiles) == 0 {
		log.Warn().Err(err).Str("order_no", processing.OrderNo).Msg("esim not ready")
		return dto.ViewReply(mainMenuTextView(textEsimNotReady))
	}

	return dto.ViewReply(detailsView(profiles[0]))
}

func (s *PurchaseService) pollOrder(ctx context.Context, orderNo string) ([]model.Profile, error) {
	var profiles []model.Profile

	operation := func() error {
		got, err := s.client.QueryOrder(ctx, orderNo)
		if err != nil {
			return err
		}
		if len(got) == 0 {
			return errOrderNotReady
		}
		profiles = got
		return nil
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(s.pollInterval), orderPollAttempts-1),
		ctx,
	)
	if err := backoff.Retry(operation, policy); err != nil {
		return nil, err
	}
	return profiles, nil
}

// Cancel aborts the flow from any state.
func (s *PurchaseService) Cancel(userID int64) dto.Reply {
	s.sessions.Clear(userID)
	return dto.ViewReply(mainMenuTextView(textOperationCancelled))
}

// Profile lists the user's purchased eSIMs from the order store.
func (s *PurchaseService) Profile(ctx context.Context, userID int64) dto.Reply {
	orders, err := s.orders.ListByUser(ctx, userID)
	if err != nil {
		log.Error().Err(err).Int64("user_id", userID).Msg("order listing failed")
		orders = nil
	}

	if len(orders) == 0 {
		return dto.ViewReply(mainMenuTextView(textProfileEmpty))
	}

	var b strings.Builder
	b.WriteString(textProfileHeader)
	rows := make([][]dto.Button, 0, len(orders)+1)
	for i, order := range orders {
		fmt.Fprintf(&b, "%d. eSIM %s — %s\n", i+1, order.Country, order.CreatedAt.Format("02.01.2006"))
		rows = append(rows, []dto.Button{{
			Text: "eSIM " + order.Country,
			Data: dto.ProfileEsimCallback(i),
		}})
	}
	rows = append(rows, backToMainRow())

	return dto.ViewReply(dto.View{Text: b.String(), Keyboard: rows})
}

// ProfileEsim re-queries the provisioning API for one purchased eSIM and
// renders its activation details and status.
func (s *PurchaseService) ProfileEsim(ctx context.Context, userID int64, index int) dto.Reply {
	orders, err := s.orders.ListByUser(ctx, userID)
	if err != nil || index < 0 || index >= len(orders) {
		return dto.ViewReply(mainMenuTextView(textProfileEsimMissing))
	}

	profiles, err := s.client.QueryOrder(ctx, orders[index].OrderNo)
	if err != nil || len(profiles) == 0 {
		log.Warn().Err(err).Str("order_no", orders[index].OrderNo).Msg("esim query failed")
		return dto.ViewReply(mainMenuTextView(textProfileEsimUnavailable))
	}

	profile := profiles[0]
	status := "Не активирована"
	if profile.Status == "ACTIVE" {
		status = "Активна"
	}

	text := fmt.Sprintf("eSIM #%d\n\nICCID: %s\nСтатус: %s\nКод активации: %s\n\nQR-код для активации: %s",
		index+1, profile.ICCID, status, profile.ActivationCode, profile.QRCodeURL)
	return dto.ViewReply(dto.View{
		Text: text,
		Keyboard: [][]dto.Button{
			{{Text: "↩️ Назад к профилю", Data: dto.CallbackProfile}},
		},
	})
}

// sessionOffers extracts the country and offer list from any state that
// carries them.
func (s *PurchaseService) sessionOffers(userID int64) (model.Country, []model.Offer, bool) {
	state, ok := s.sessions.Get(userID)
	if !ok {
		return model.Country{}, nil, false
	}

	switch st := state.(type) {
	case model.SelectingPackage:
		return st.Country, st.Offers, len(st.Offers) > 0
	case model.SelectingDays:
		return st.Country, st.Offers, len(st.Offers) > 0
	case model.ConfirmingPurchase:
		return st.Country, st.Offers, len(st.Offers) > 0
	default:
		return model.Country{}, nil, false
	}
}

func validDays(days int) bool {
	for _, d := range DayOptions {
		if d == days {
			return true
		}
	}
	return false
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
