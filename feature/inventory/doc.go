// Package inventory mirrors player inventories so trades can be checked server side.
//
// The host pushes each inventory with PUT and the shops move items in and out of it in
// the same transaction as the payment. Stacks of the same item and durability merge up
// to the configured max stack; items with a max durability never stack.
//
// Give is all-or-nothing, GiveUpTo returns whatever fitted. Take variants return the
// removed stacks with their durability, so nothing is lost when items change hands.
package inventory
