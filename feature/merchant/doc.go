// Package merchant places NPC merchants that open numbered admin shops.
//
// A merchant created without a shop number gets a fresh shop named after it. A shop
// stays alive while any merchant points at it.
package merchant
