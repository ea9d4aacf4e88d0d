package chipedit

// --- Messages emitted by the widget ---

// ChangedMsg is sent whenever the committed chip list changes: a chip was
// inserted, deleted, or reordered. Texts is a snapshot of the new order.
type ChangedMsg struct{ Texts []string }

// ReorderedMsg is sent when a drag gesture completes and actually moved a
// chip. From and To are indices into the list before and after the move.
type ReorderedMsg struct{ From, To int }
