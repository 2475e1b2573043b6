// Command nbtctl inspects and edits Minecraft NBT files.
package main

func main() {
	execute()
}
