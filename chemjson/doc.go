package chemjson

//Package chemjson implements serialization and unserialization of
//verchem sketches. Its planned use is the communication of the sketcher
//with host programs which can be written in languages other than Go
//(a browser shell, an electron wrapper, a Python teaching script), as
//long as those languages can read and write JSON lines. Every scene
//travels as a header line followed by one line per atom and one line
//per bond, so a host can start painting before the transmision ends.
//chemjson also implements the transmision of host options, so an
//external program can configure the sketcher it embeds, for instance,
//via UNIX pipes.
