// Package schema describes which attributes of an XML document hold
// translatable text.
//
// A Schema is a tree of named nodes mirroring the element structure of a
// family of documents; all same-named siblings share one node. Each node maps
// attribute names to an AttributeKind. Nodes live in an arena owned by the
// Schema and refer to each other through NodeID handles, the parent link
// being used only to rebuild a node's path.
//
// # Persisted format
//
//	<schema name="strings">
//	  <node name="config">
//	    <node name="item">
//	      <attr name="text" type="string"/>
//	      <attr name="id" type="none"/>
//	    </node>
//	  </node>
//	</schema>
//
// # Selection
//
// Schemas are inferred with every attribute Untyped. A person then picks the
// translatable ones; that choice is a Selection, a YAML list of field keys:
//
//	schema: strings
//	translatable:
//	  - /config/item/@text
package schema
