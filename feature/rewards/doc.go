// Package rewards pays players for breaking blocks and killing monsters.
//
// Rules are keyed by kind and target. The host reports events to /rewards/trigger;
// the exact target rule applies, otherwise the kind's "*" rule. Events without an
// enabled rule pay nothing and are not errors.
package rewards
