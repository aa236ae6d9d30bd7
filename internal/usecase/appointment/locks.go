package appointment

import "sync"

// dentistLocks serializes scheduling attempts per dentist so the conflict
// check and the insert behave as one critical section inside this process.
// The Postgres exclusion constraint covers races across processes.
type dentistLocks struct {
	mu    sync.Mutex
	locks map[uint]*sync.Mutex
}

func newDentistLocks() *dentistLocks {
	return &dentistLocks{
		locks: make(map[uint]*sync.Mutex),
	}
}

func (d *dentistLocks) forDentist(dentistID uint) *sync.Mutex {
	d.mu.Lock()
	defer d.mu.Unlock()

	l, ok := d.locks[dentistID]
	if !ok {
		l = &sync.Mutex{}
		d.locks[dentistID] = l
	}
	return l
}
