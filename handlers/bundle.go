package handlers

// HandlerBundle groups every handler the router needs.
type HandlerBundle struct {
	Auth     *AuthHandler
	Calendar *CalendarHandler
	Chat     *ChatHandler
	Content  *ContentHandler
	Member   *MemberHandler
	Storage  *StorageHandler
}
