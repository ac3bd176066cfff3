package social

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/birdwatchers/birdhunter/birdhunter/database/models"
	"github.com/birdwatchers/birdhunter/internal/domain/catalog"
	"github.com/birdwatchers/birdhunter/internal/domain/cooldown"
	"github.com/birdwatchers/birdhunter/internal/domain/gameerr"
)

type TradeOffer struct {
	InitiatorID   string
	TargetID      string
	OfferBirdID   int64
	OfferCoins    int64
	RequestBirdID int64
	RequestCoins  int64
}

// ProposeTrade validates both sides and stores a pending trade that the target has to accept before it expires.
func (s *Service) ProposeTrade(ctx context.Context, o TradeOffer) (*models.Trade, error) {
	if o.InitiatorID == o.TargetID {
		return nil, gameerr.Invalid("user", "you cannot trade with yourself")
	}
	if o.OfferCoins < 0 || o.RequestCoins < 0 {
		return nil, gameerr.Invalid("coins", "must not be negative")
	}
	trade := &models.Trade{
		InitiatorID:   o.InitiatorID,
		TargetID:      o.TargetID,
		OfferBirdID:   o.OfferBirdID,
		OfferCoins:    o.OfferCoins,
		RequestBirdID: o.RequestBirdID,
		RequestCoins:  o.RequestCoins,
		Status:        models.TradePending,
	}
	if trade.Empty() {
		return nil, gameerr.Invalid("trade", "offer or request something")
	}
	if err := s.cooldowns.Check(ctx, o.InitiatorID, cooldown.ActionTrade); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	trade.CreatedAt = now
	trade.ExpiresAt = now.Add(s.cfg.TradeExpiry)
	err := s.repo.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.checkSides(ctx, trade); err != nil {
			return err
		}
		if err := s.repo.InsertTrade(ctx, trade); err != nil {
			return err
		}
		return s.cooldowns.Start(ctx, o.InitiatorID, cooldown.ActionTrade, s.cfg.TradeCooldown)
	})
	if err != nil {
		return nil, err
	}
	return trade, nil
}

// checkSides verifies each party still holds what they put on the table.
func (s *Service) checkSides(ctx context.Context, t *models.Trade) error {
	initiator, err := s.repo.GetUser(ctx, t.InitiatorID)
	if err != nil {
		return err
	}
	target, err := s.repo.GetUser(ctx, t.TargetID)
	if err != nil {
		return err
	}
	if initiator.WalletBalance < t.OfferCoins {
		return gameerr.ErrInsufficientFunds
	}
	if target.WalletBalance < t.RequestCoins {
		return fmt.Errorf("%s cannot cover the request: %w", target.Username, gameerr.ErrInsufficientFunds)
	}
	if t.OfferBirdID != 0 {
		if _, err := s.repo.GetBird(ctx, t.InitiatorID, t.OfferBirdID); err != nil {
			return err
		}
	}
	if t.RequestBirdID != 0 {
		if _, err := s.repo.GetBird(ctx, t.TargetID, t.RequestBirdID); err != nil {
			return err
		}
	}
	return nil
}

// AcceptTrade settles a pending trade: both coin legs less the fee and both birds, all or nothing.
func (s *Service) AcceptTrade(ctx context.Context, tradeID int64, userID string) (*models.Trade, error) {
	trade, err := s.repo.GetTrade(ctx, tradeID)
	if err != nil {
		return nil, err
	}
	if trade.TargetID != userID {
		return nil, fmt.Errorf("only the recipient can accept: %w", gameerr.ErrPermission)
	}
	if trade.Status != models.TradePending {
		return nil, gameerr.ErrTradeNotFound
	}
	now := s.clock.Now()
	if !now.Before(trade.ExpiresAt) {
		if err := s.repo.SetTradeStatus(ctx, trade.ID, models.TradePending, models.TradeExpired, now); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("trade #%d: %w", trade.ID, gameerr.ErrExpired)
	}

	err = s.repo.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.repo.SetTradeStatus(ctx, trade.ID, models.TradePending, models.TradeAccepted, now); err != nil {
			return err
		}
		if err := s.checkSides(ctx, trade); err != nil {
			return err
		}
		if trade.OfferCoins > 0 {
			if _, _, err := s.wallet.Transfer(ctx, trade.InitiatorID, trade.TargetID, trade.OfferCoins, s.cfg.TradeFee, fmt.Sprintf("%s%d", catalog.ReasonTrade, trade.ID)); err != nil {
				return err
			}
		}
		if trade.RequestCoins > 0 {
			if _, _, err := s.wallet.Transfer(ctx, trade.TargetID, trade.InitiatorID, trade.RequestCoins, s.cfg.TradeFee, fmt.Sprintf("%s%d", catalog.ReasonTrade, trade.ID)); err != nil {
				return err
			}
		}
		if trade.OfferBirdID != 0 {
			if err := s.repo.TransferBird(ctx, trade.OfferBirdID, trade.InitiatorID, trade.TargetID); err != nil {
				return err
			}
		}
		if trade.RequestBirdID != 0 {
			if err := s.repo.TransferBird(ctx, trade.RequestBirdID, trade.TargetID, trade.InitiatorID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	trade.Status = models.TradeAccepted
	trade.CompletedAt = now
	slog.Info("Trade completed",
		slog.String("type", "game"),
		slog.Int64("trade_id", trade.ID),
		slog.String("initiator", trade.InitiatorID),
		slog.String("target", trade.TargetID),
	)
	return trade, nil
}

// DeclineTrade lets the target decline or the initiator cancel a pending trade.
func (s *Service) DeclineTrade(ctx context.Context, tradeID int64, userID string) (*models.Trade, error) {
	trade, err := s.repo.GetTrade(ctx, tradeID)
	if err != nil {
		return nil, err
	}
	status := models.TradeDeclined
	switch userID {
	case trade.TargetID:
	case trade.InitiatorID:
		status = models.TradeCancelled
	default:
		return nil, fmt.Errorf("not your trade: %w", gameerr.ErrPermission)
	}
	if err := s.repo.SetTradeStatus(ctx, trade.ID, models.TradePending, status, s.clock.Now()); err != nil {
		return nil, err
	}
	trade.Status = status
	return trade, nil
}

// ExpireTrades marks every overdue pending trade expired.
func (s *Service) ExpireTrades(ctx context.Context) (int64, error) {
	return s.repo.ExpireTrades(ctx, s.clock.Now())
}

func (s *Service) Trade(ctx context.Context, tradeID int64) (*models.Trade, error) {
	return s.repo.GetTrade(ctx, tradeID)
}
