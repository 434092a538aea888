package form_session_service

import "github.com/kvrsharma/shivaratri-event-forms/internal/core/domain"

// SyncMembers приводит длину ростера к numberOfPeople-1. При выключенном
// участии в событии (поток брони) ростер пустой, а numberOfPeople
// сбрасывается на 1. Рост - добавление пустых записей в конец, сокращение -
// только с хвоста, чтобы не перенумеровывать уже заполненные записи.
// Повторный вызов без изменения numberOfPeople ничего не меняет.
func SyncMembers(fs *domain.FieldSet, flow domain.Flow) {
	target := fs.PartySize - 1
	if flow == domain.FlowBooking && !fs.ParticipatingInEvent {
		fs.PartySize = domain.MinPartySize
		target = 0
	}
	if target < 0 {
		target = 0
	}

	for len(fs.Members) < target {
		fs.Members = append(fs.Members, domain.Member{})
	}
	if len(fs.Members) > target {
		fs.Members = fs.Members[:target]
	}
}
