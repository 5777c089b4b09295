// Package badger provides an adapter.Adapter implementation backed by an
// embedded BadgerDB key-value store.
//
//	db, err := badger.Open(badger.DefaultOptions("./data"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer db.Close()
//
//	vault := filevault.New(badgeradapter.New(db, "filevault/"))
package badger
