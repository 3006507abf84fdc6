// Package shop implements the admin shops.
//
// Shop 0 is the global shop opened with /shop and always exists. Shops numbered above
// zero belong to NPC merchants. Each shop has up to MaxTabs named tabs and any number of
// listings. A listing sells a fixed lot (Quantity units) for PriceBuy and buys it back for
// PriceSell, in cash when UseCash is set and in coins otherwise. Stock -1 never runs out.
//
// # Trades
//
// Buy and Sell run in a single database transaction together with the ledger and the
// inventory, so a purchase that cannot be delivered is never charged and stock is
// never decremented for items the player did not get. Command listings give no item:
// each lot enqueues the rendered command for the host to poll from /commands.
//
// Trades accept an Idempotency-Key header. When Redis is configured a repeated key is
// rejected, and the key is released again if the trade fails.
//
// # Catalog
//
// The whole catalog can be exported to and imported from YAML:
//
//	shops:
//	  - number: 0
//	    name: Shop
//	    tabs: [Blocks, Ranks]
//	    items:
//	      - tab: Blocks
//	        item_id: stone
//	        quantity: 64
//	        price_buy: 10
//	        price_sell: 2
//	      - tab: Ranks
//	        command: "rank set {player} vip"
//	        quantity: 1
//	        price_buy: 500
//	        use_cash: true
//	        stock: 100
package shop
