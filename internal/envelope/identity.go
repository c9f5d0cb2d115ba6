package envelope

import "strconv"

// AssignDocumentIDs : клиентские документы получают "1".."k" в порядке запроса,
// формы получают "k+1".."k+m". Номера не зависят от того, сколько форм
// впоследствии удастся сгенерировать
func AssignDocumentIDs(clientCount, formCount int) (clientIDs []string, formIDs []string) {
	clientIDs = make([]string, 0, clientCount)
	for i := 0; i < clientCount; i++ {
		clientIDs = append(clientIDs, strconv.Itoa(i+1))
	}

	formIDs = make([]string, 0, formCount)
	for i := 0; i < formCount; i++ {
		formIDs = append(formIDs, strconv.Itoa(clientCount+i+1))
	}

	return clientIDs, formIDs
}
