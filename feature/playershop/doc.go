// Package playershop implements shops run by players.
//
// Every player may own one shop. The owner stocks listings from their own inventory:
// List moves items out of an inventory slot into a new listing that keeps the slot's
// durability, Restock adds more of exactly the same item, and Unlist gives stock back
// as far as the inventory has room. What does not fit stays listed.
//
// Other players Buy from a listing (the owner is paid) or SellTo it (the owner pays).
// The receiving side has the configured tax withheld; the tax goes to the tax account
// when one is set. Payments, items and stock move in one transaction.
package playershop
