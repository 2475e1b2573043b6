/*
Package nbtfile provides one-call operations on tag files.

# Quick Start

Read a value:

	cur, err := nbtfile.Get("level.dat", "Data.LevelName", nil)
	if err != nil {
	    log.Fatal(err)
	}
	defer cur.Close()
	name, _ := cur.StringValue()

Change a value in place, keeping a backup:

	err := nbtfile.SetValue("level.dat", "Data.allowCommands", types.TagByte, "1",
	    &nbtfile.OperationOptions{CreateBackup: true})

Every write keeps the compression of the file it read unless the options
name another one, and goes through a temporary file that is renamed over
the original.

# Paths

Tag paths use dots between compound keys and brackets for list indexes:

	Data.Player.Inventory[0].id
	Data."key.with.dots"

# Error Handling

Errors carry a types.ErrKind; branch with errors.Is against the sentinels
in pkg/types, for example types.ErrNotFound for a missing tag.
*/
package nbtfile
