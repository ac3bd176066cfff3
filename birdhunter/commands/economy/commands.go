package economy

import (
	"github.com/birdwatchers/birdhunter/birdhunter"
	"github.com/birdwatchers/birdhunter/birdhunter/handlers"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
)

var Commands = []discord.ApplicationCommandCreate{
	Balance,
	Deposit,
	Withdraw,
	Work,
	Sell,
	Shop,
	Buy,
	Inventory,
	Use,
	Pass,
	Transactions,
}

func Register(r handler.Router, b *birdhunter.Bot) {
	r.Command("/balance", handlers.WrapWithLogging("balance", BalanceHandler(b)))

	r.Command("/deposit", handlers.WrapWithLogging("deposit", DepositHandler(b)))
	r.Modal("/deposit/submit", handlers.WrapModalWithLogging("deposit-submit", DepositModalHandler(b)))
	r.Command("/withdraw", handlers.WrapWithLogging("withdraw", WithdrawHandler(b)))
	r.Modal("/withdraw/submit", handlers.WrapModalWithLogging("withdraw-submit", WithdrawModalHandler(b)))

	r.Command("/work", handlers.WrapWithLogging("work", WorkHandler(b)))
	r.Component("/work/{session}/{job}", handlers.WrapComponentWithLogging("work-job", WorkComponent(b)))

	r.Command("/sell", handlers.WrapWithLogging("sell", SellHandler(b)))
	r.Component("/sell/{choice}/{session}", handlers.WrapComponentWithLogging("sell-confirm", SellComponent(b)))

	r.Command("/shop", handlers.WrapWithLogging("shop", ShopHandler(b)))
	r.Component("/shop/category", handlers.WrapComponentWithLogging("shop-category", ShopCategoryComponent(b)))
	r.Command("/buy", handlers.WrapWithLogging("buy", BuyHandler(b)))
	r.Command("/inventory", handlers.WrapWithLogging("inventory", InventoryHandler(b)))
	r.Command("/use", handlers.WrapWithLogging("use", UseHandler(b)))

	r.Route("/pass", func(r handler.Router) {
		r.Command("/status", handlers.WrapWithLogging("pass-status", PassStatusHandler(b)))
		r.Command("/purchase", handlers.WrapWithLogging("pass-purchase", PassPurchaseHandler(b)))
	})

	r.Command("/transactions", handlers.WrapWithLogging("transactions", TransactionsHandler(b)))
}
