package ecs

// Commands provides a buffer for deferred storage operations. Systems queue
// structural changes here while iterating; the buffer is flushed after the
// stage that queued them finishes.
type Commands struct {
	spawns   []func(*Storage)
	despawns []EntityId
	inserts  []entityCommand
	removes  []entityCommand
	defers   []func()
}

type entityCommand struct {
	entity EntityId
	apply  func(*Storage, EntityId)
}

func newCommands() *Commands {
	return &Commands{}
}

// Despawn queues an entity removal.
func (c *Commands) Despawn(entity EntityId) {
	c.despawns = append(c.despawns, entity)
}

// Defer queues a function to run after all other queued operations.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Len returns the number of queued operations.
func (c *Commands) Len() int {
	return len(c.spawns) + len(c.despawns) + len(c.inserts) + len(c.removes) + len(c.defers)
}

// DeferSpawn queues the creation of an entity holding component.
func DeferSpawn[T any](c *Commands, component T) {
	c.spawns = append(c.spawns, func(s *Storage) {
		Spawn(s, component)
	})
}

// DeferInsert queues attaching component to entity.
func DeferInsert[T any](c *Commands, entity EntityId, component T) {
	c.inserts = append(c.inserts, entityCommand{
		entity: entity,
		apply: func(s *Storage, id EntityId) {
			Insert(s, id, component)
		},
	})
}

// DeferRemove queues detaching the T component from entity.
func DeferRemove[T any](c *Commands, entity EntityId) {
	c.removes = append(c.removes, entityCommand{
		entity: entity,
		apply: func(s *Storage, id EntityId) {
			Remove[T](s, id)
		},
	})
}

// Flush applies queued operations to storage in the order despawns, removes,
// inserts, spawns, defers. Removes and inserts that target an entity despawned
// in the same flush are skipped. Operations queued while flushing are kept for
// the next flush.
func (c *Commands) Flush(storage *Storage) {
	if c.Len() == 0 {
		return
	}

	pending := *c
	c.spawns = nil
	c.despawns = nil
	c.inserts = nil
	c.removes = nil
	c.defers = nil

	deletedEntities := make(map[EntityId]bool, len(pending.despawns))
	for _, id := range pending.despawns {
		storage.Despawn(id)
		deletedEntities[id] = true
	}

	for _, cmd := range pending.removes {
		if !deletedEntities[cmd.entity] {
			cmd.apply(storage, cmd.entity)
		}
	}

	for _, cmd := range pending.inserts {
		if !deletedEntities[cmd.entity] {
			cmd.apply(storage, cmd.entity)
		}
	}

	for _, spawn := range pending.spawns {
		spawn(storage)
	}

	for _, fn := range pending.defers {
		fn()
	}
}
