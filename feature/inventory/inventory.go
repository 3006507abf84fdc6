package inventory

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"economy-manager/feature/inventory/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Inventory moves items in and out of player inventories inside a caller-owned
// transaction. Every change is planned against the loaded slots first, so an add
// that does not fit is rejected before any row is written.
type Inventory struct {
	cfg Config
}

// New creates an inventory with the given limits.
func New(cfg Config) *Inventory {
	if cfg.Slots <= 0 {
		cfg.Slots = 36
	}
	if cfg.MaxStack <= 0 {
		cfg.MaxStack = 100
	}
	return &Inventory{cfg: cfg}
}

// Config returns the effective limits.
func (inv *Inventory) Config() Config {
	return inv.cfg
}

// placement is one planned change: add to an existing slot or fill a free one.
type placement struct {
	slot  *models.Slot
	index int
	add   int
}

// ValidateStack checks a stack is well formed.
func ValidateStack(s models.Stack) error {
	if strings.TrimSpace(s.ItemID) == "" || s.Quantity <= 0 {
		return ErrInvalidStack
	}
	if math.IsNaN(s.Durability) || math.IsNaN(s.MaxDurability) || s.Durability < 0 || s.MaxDurability < 0 {
		return ErrInvalidStack
	}
	if s.MaxDurability > 0 && s.Durability > s.MaxDurability {
		return ErrInvalidStack
	}
	return nil
}

// MaxStackFor returns how many of s fit in one slot.
func (inv *Inventory) MaxStackFor(s models.Stack) int {
	if s.MaxDurability > 0 {
		return 1
	}
	return inv.cfg.MaxStack
}

// plan computes where s would go. Existing stacks of the same kind are topped up
// first, then free slots are used in index order.
func (inv *Inventory) plan(slots []models.Slot, s models.Stack) ([]placement, int) {
	limit := inv.MaxStackFor(s)
	remaining := s.Quantity
	var out []placement

	used := make(map[int]struct{}, len(slots))
	for i := range slots {
		used[slots[i].Index] = struct{}{}
		if remaining == 0 {
			continue
		}
		if !slots[i].Stack().SameKind(s) || slots[i].Quantity >= limit {
			continue
		}
		add := min(limit-slots[i].Quantity, remaining)
		out = append(out, placement{slot: &slots[i], index: slots[i].Index, add: add})
		remaining -= add
	}

	for idx := 0; idx < inv.cfg.Slots && remaining > 0; idx++ {
		if _, taken := used[idx]; taken {
			continue
		}
		add := min(limit, remaining)
		out = append(out, placement{index: idx, add: add})
		remaining -= add
	}

	return out, s.Quantity - remaining
}

// Load returns the owner's slots ordered by index, locked for update.
func (inv *Inventory) Load(tx *gorm.DB, owner string) ([]models.Slot, error) {
	var slots []models.Slot
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("owner_uuid = ?", owner).
		Order("slot_index ASC").
		Find(&slots).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load inventory of %s: %w", owner, err)
	}
	return slots, nil
}

// Fits reports how many of s the owner can receive right now.
func (inv *Inventory) Fits(tx *gorm.DB, owner string, s models.Stack) (int, error) {
	if err := ValidateStack(s); err != nil {
		return 0, err
	}
	slots, err := inv.Load(tx, owner)
	if err != nil {
		return 0, err
	}
	_, fitted := inv.plan(slots, s)
	return fitted, nil
}

// Give adds the whole stack or nothing.
func (inv *Inventory) Give(tx *gorm.DB, owner string, s models.Stack) error {
	if err := ValidateStack(s); err != nil {
		return err
	}
	slots, err := inv.Load(tx, owner)
	if err != nil {
		return err
	}
	placements, fitted := inv.plan(slots, s)
	if fitted < s.Quantity {
		return ErrInventoryFull
	}
	return inv.apply(tx, owner, s, placements)
}

// GiveUpTo adds as much of the stack as fits and returns the amount given.
func (inv *Inventory) GiveUpTo(tx *gorm.DB, owner string, s models.Stack) (int, error) {
	if err := ValidateStack(s); err != nil {
		return 0, err
	}
	slots, err := inv.Load(tx, owner)
	if err != nil {
		return 0, err
	}
	placements, fitted := inv.plan(slots, s)
	if fitted == 0 {
		return 0, nil
	}
	if err := inv.apply(tx, owner, s, placements); err != nil {
		return 0, err
	}
	return fitted, nil
}

func (inv *Inventory) apply(tx *gorm.DB, owner string, s models.Stack, placements []placement) error {
	for _, p := range placements {
		if p.slot != nil {
			p.slot.Quantity += p.add
			if err := tx.Model(&models.Slot{}).Where("id = ?", p.slot.ID).Update("quantity", p.slot.Quantity).Error; err != nil {
				return fmt.Errorf("failed to update slot %d: %w", p.index, err)
			}
			continue
		}
		slot := models.Slot{
			OwnerUUID:     owner,
			Index:         p.index,
			ItemID:        s.ItemID,
			Quantity:      p.add,
			Durability:    s.Durability,
			MaxDurability: s.MaxDurability,
		}
		if err := tx.Create(&slot).Error; err != nil {
			return fmt.Errorf("failed to fill slot %d: %w", p.index, err)
		}
	}
	return nil
}

// Take removes qty of itemID across stacks, lowest slot first, and returns what was
// taken grouped by durability.
func (inv *Inventory) Take(tx *gorm.DB, owner, itemID string, qty int) ([]models.Stack, error) {
	return inv.take(tx, owner, qty, func(s models.Slot) bool {
		return s.ItemID == itemID
	})
}

// TakeMatching removes qty items of exactly the given kind.
func (inv *Inventory) TakeMatching(tx *gorm.DB, owner string, kind models.Stack, qty int) (models.Stack, error) {
	taken, err := inv.take(tx, owner, qty, func(s models.Slot) bool {
		return s.Stack().SameKind(kind)
	})
	if err != nil {
		return models.Stack{}, err
	}
	return taken[0], nil
}

// TakeFromSlot removes qty items from one slot and returns them with the slot's durability.
func (inv *Inventory) TakeFromSlot(tx *gorm.DB, owner string, index, qty int) (models.Stack, error) {
	if index < 0 || index >= inv.cfg.Slots {
		return models.Stack{}, ErrInvalidSlot
	}
	if qty <= 0 {
		return models.Stack{}, ErrInvalidStack
	}
	taken, err := inv.take(tx, owner, qty, func(s models.Slot) bool {
		return s.Index == index
	})
	if errors.Is(err, ErrNotEnoughItems) {
		var n int64
		if cErr := tx.Model(&models.Slot{}).Where("owner_uuid = ? AND slot_index = ?", owner, index).Count(&n).Error; cErr == nil && n == 0 {
			return models.Stack{}, ErrSlotEmpty
		}
	}
	if err != nil {
		return models.Stack{}, err
	}
	return taken[0], nil
}

func (inv *Inventory) take(tx *gorm.DB, owner string, qty int, match func(models.Slot) bool) ([]models.Stack, error) {
	if qty <= 0 {
		return nil, ErrInvalidStack
	}
	slots, err := inv.Load(tx, owner)
	if err != nil {
		return nil, err
	}

	available := 0
	for _, s := range slots {
		if match(s) {
			available += s.Quantity
		}
	}
	if available < qty {
		return nil, ErrNotEnoughItems
	}

	var taken []models.Stack
	remaining := qty
	for _, s := range slots {
		if remaining == 0 {
			break
		}
		if !match(s) {
			continue
		}
		n := min(s.Quantity, remaining)
		remaining -= n
		taken = mergeInto(taken, models.Stack{ItemID: s.ItemID, Quantity: n, Durability: s.Durability, MaxDurability: s.MaxDurability})

		if n == s.Quantity {
			if err := tx.Delete(&models.Slot{}, s.ID).Error; err != nil {
				return nil, fmt.Errorf("failed to clear slot %d: %w", s.Index, err)
			}
			continue
		}
		if err := tx.Model(&models.Slot{}).Where("id = ?", s.ID).Update("quantity", s.Quantity-n).Error; err != nil {
			return nil, fmt.Errorf("failed to update slot %d: %w", s.Index, err)
		}
	}
	return taken, nil
}

// Count returns how many of itemID the owner holds.
func (inv *Inventory) Count(tx *gorm.DB, owner, itemID string) (int, error) {
	var total int64
	err := tx.Model(&models.Slot{}).
		Where("owner_uuid = ? AND item_id = ?", owner, itemID).
		Select("COALESCE(SUM(quantity), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count %s for %s: %w", itemID, owner, err)
	}
	return int(total), nil
}

// Replace overwrites the owner's inventory with the given slots.
func (inv *Inventory) Replace(tx *gorm.DB, owner string, slots []models.Slot) error {
	seen := make(map[int]struct{}, len(slots))
	for _, s := range slots {
		if s.Index < 0 || s.Index >= inv.cfg.Slots {
			return ErrInvalidSlot
		}
		if _, dup := seen[s.Index]; dup {
			return ErrInvalidSlot
		}
		seen[s.Index] = struct{}{}
		st := s.Stack()
		if err := ValidateStack(st); err != nil {
			return err
		}
		if st.Quantity > inv.MaxStackFor(st) {
			return ErrInvalidStack
		}
	}

	if err := tx.Where("owner_uuid = ?", owner).Delete(&models.Slot{}).Error; err != nil {
		return fmt.Errorf("failed to clear inventory of %s: %w", owner, err)
	}
	if len(slots) == 0 {
		return nil
	}

	rows := make([]models.Slot, len(slots))
	copy(rows, slots)
	sort.Slice(rows, func(i, j int) bool { return rows[i].Index < rows[j].Index })
	for i := range rows {
		rows[i].ID = 0
		rows[i].OwnerUUID = owner
	}
	if err := tx.Create(&rows).Error; err != nil {
		return fmt.Errorf("failed to write inventory of %s: %w", owner, err)
	}
	return nil
}

func mergeInto(stacks []models.Stack, s models.Stack) []models.Stack {
	for i := range stacks {
		if stacks[i].SameKind(s) {
			stacks[i].Quantity += s.Quantity
			return stacks
		}
	}
	return append(stacks, s)
}
